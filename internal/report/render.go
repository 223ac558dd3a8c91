package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// DisplayRules tune statement rendering per caption. They never change
// the aggregated numbers, only how rows are shown.
type DisplayRules struct {
	// SignReversed flips the displayed sign. Contra rows like the
	// owner's drawing are kept positive in the books but shown negative.
	SignReversed []string

	// AlwaysShown rows render a zero instead of being dropped when no
	// posting touched them.
	AlwaysShown []string

	// HiddenIfZero rows are dropped when they net to zero.
	HiddenIfZero []string

	// Currency is the ISO 4217 code used for formatting. Defaults to USD.
	Currency string
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (r DisplayRules) format(value int64) string {
	code := r.Currency
	if code == "" {
		code = money.USD
	}
	// Ledger amounts are whole currency units; go-money counts the
	// currency's minor units.
	minor := value
	if c := money.GetCurrency(code); c != nil {
		for i := 0; i < c.Fraction; i++ {
			minor *= 10
		}
	}
	return money.New(minor, code).Display()
}

func (r DisplayRules) displayValue(name string, a *model.Amount) (int64, bool) {
	if a == nil {
		if contains(r.AlwaysShown, name) {
			return 0, true
		}
		return 0, false
	}
	if a.Value() == 0 && contains(r.HiddenIfZero, name) {
		return 0, false
	}
	v := a.Value()
	if contains(r.SignReversed, name) {
		v = -v
	}
	return v, true
}

const captionWidth = 32

func caption(level int, name string) string {
	return fmt.Sprintf("%-*s", captionWidth, strings.Repeat("  ", level-1)+name)
}

// RenderProfitAndLoss writes the profit and loss statement as a text
// table, one caption per row with the aggregated amount.
func RenderProfitAndLoss(w io.Writer, pl *ProfitAndLoss, rules DisplayRules) error {
	fmt.Fprintln(w, "Profit and Loss")
	fmt.Fprintln(w, strings.Repeat("-", captionWidth+18))
	for _, n := range model.Flatten(pl.Root) {
		if n.Level == 0 {
			continue
		}
		v, show := rules.displayValue(n.Name, n.Value.Amount)
		if !show {
			continue
		}
		fmt.Fprintf(w, "%s %16s\n", caption(n.Level, n.Name), rules.format(v))
	}
	fmt.Fprintln(w, strings.Repeat("-", captionWidth+18))
	fmt.Fprintf(w, "%s %16s\n", fmt.Sprintf("%-*s", captionWidth, "Net income"), rules.format(pl.NetIncome.Value()))
	return nil
}

// RenderBalanceSheet writes the balance sheet as a text table with the
// opening and closing balances side by side.
func RenderBalanceSheet(w io.Writer, bs *BalanceSheet, rules DisplayRules) error {
	fmt.Fprintln(w, "Balance Sheet")
	fmt.Fprintf(w, "%s %16s %16s\n", fmt.Sprintf("%-*s", captionWidth, ""), "Opening", "Closing")
	fmt.Fprintln(w, strings.Repeat("-", captionWidth+35))
	for _, n := range model.Flatten(bs.Root) {
		if n.Level == 0 {
			continue
		}
		opening, showOpening := rules.displayValue(n.Name, n.Value.Opening)
		closing, showClosing := rules.displayValue(n.Name, n.Value.Closing)
		if !showOpening && !showClosing {
			continue
		}
		fmt.Fprintf(w, "%s %16s %16s\n", caption(n.Level, n.Name),
			rules.format(opening), rules.format(closing))
	}

	// Accounting equation row: the debit-side sections total what the
	// credit-side sections total.
	var side [2]struct{ opening, closing int64 }
	for _, n := range bs.Root.Children {
		i := 0
		if a := firstAmount(n.Value); a != nil && a.Side() == model.Credit {
			i = 1
		}
		if n.Value.Opening != nil {
			side[i].opening += n.Value.Opening.Value()
		}
		if n.Value.Closing != nil {
			side[i].closing += n.Value.Closing.Value()
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", captionWidth+35))
	fmt.Fprintf(w, "%s %16s %16s\n", fmt.Sprintf("%-*s", captionWidth, "Total assets"),
		rules.format(side[0].opening), rules.format(side[0].closing))
	fmt.Fprintf(w, "%s %16s %16s\n", fmt.Sprintf("%-*s", captionWidth, "Total liabilities and equity"),
		rules.format(side[1].opening), rules.format(side[1].closing))
	return nil
}

func firstAmount(cell *BSCell) *model.Amount {
	if cell.Closing != nil {
		return cell.Closing
	}
	return cell.Opening
}

// RenderMonthlyTotals writes the monthly sales and purchases table with
// a totals row.
func RenderMonthlyTotals(w io.Writer, totals []MonthlyTotal, rules DisplayRules) error {
	fmt.Fprintln(w, "Monthly Totals")
	fmt.Fprintf(w, "%-10s %16s %16s\n", "Month", "Sales", "Purchases")
	var sales, purchases int64
	for _, t := range totals {
		fmt.Fprintf(w, "%4d-%02d    %16s %16s\n", t.Year, int(t.Month),
			rules.format(t.Sales), rules.format(t.Purchases))
		sales += t.Sales
		purchases += t.Purchases
	}
	fmt.Fprintf(w, "%-10s %16s %16s\n", "Total", rules.format(sales), rules.format(purchases))
	return nil
}
