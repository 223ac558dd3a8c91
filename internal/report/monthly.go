package report

import (
	"time"

	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// MonthlyTotal is one fiscal month of sales and purchases.
type MonthlyTotal struct {
	Year      int
	Month     time.Month
	Sales     int64
	Purchases int64
}

// MonthlyTotals sums sales and purchases per fiscal month, on each
// account's normal side. The twelve months start at the rule's opening
// date; opening entries, closing entries and out-of-period dates are
// ignored.
func MonthlyTotals(l *ledger.Ledger, rule model.OpeningRule, sales, purchases model.AccountTitle) []MonthlyTotal {
	opening := rule.OpeningDate
	totals := make([]MonthlyTotal, 12)
	for i := range totals {
		m := time.Date(opening.Year(), opening.Month()+time.Month(i), 1, 0, 0, 0, 0, opening.Location())
		totals[i].Year = m.Year()
		totals[i].Month = m.Month()
	}

	monthIndex := func(d time.Time) int {
		return (d.Year()-opening.Year())*12 + int(d.Month()) - int(opening.Month())
	}
	for _, e := range l.Entries() {
		if e.IsClosing() || e.IsOpening(rule) || e.Date.IsZero() {
			continue
		}
		i := monthIndex(e.Date)
		if i < 0 || i >= 12 {
			continue
		}
		for _, line := range e.Debits {
			switch {
			case line.Title.Equal(sales):
				totals[i].Sales -= line.Amount
			case line.Title.Equal(purchases):
				totals[i].Purchases += line.Amount
			}
		}
		for _, line := range e.Credits {
			switch {
			case line.Title.Equal(sales):
				totals[i].Sales += line.Amount
			case line.Title.Equal(purchases):
				totals[i].Purchases -= line.Amount
			}
		}
	}
	return totals
}
