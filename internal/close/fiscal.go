package close

import (
	"errors"
	"time"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
)

// ErrNoFiscalPeriod is returned when the fiscal period cannot be
// resolved because the ledger has no dated entries. This is fatal:
// settlement never runs partially.
var ErrNoFiscalPeriod = errors.New("no dated entries to resolve the fiscal period from")

// OpeningDate returns the minimum date over all entries.
func OpeningDate(l *ledger.Ledger) (time.Time, error) {
	d, ok := l.OpeningDate()
	if !ok {
		return time.Time{}, ErrNoFiscalPeriod
	}
	return d, nil
}

// ClosingDate resolves the fiscal closing date. Sole proprietors keep a
// calendar-year period and close on December 31 of the first entry's
// year. Corporations run a 12-month period from the opening date: the
// closing date is the last day of the month before the anniversary
// month.
func ClosingDate(l *ledger.Ledger, entity chart.Entity) (time.Time, error) {
	if entity.Solo() {
		first, ok := l.FirstDate()
		if !ok {
			return time.Time{}, ErrNoFiscalPeriod
		}
		return time.Date(first.Year(), time.December, 31, 0, 0, 0, 0, first.Location()), nil
	}

	opening, ok := l.OpeningDate()
	if !ok {
		return time.Time{}, ErrNoFiscalPeriod
	}
	// Day zero of the opening month, one year on.
	return time.Date(opening.Year()+1, opening.Month(), 0, 0, 0, 0, 0, opening.Location()), nil
}
