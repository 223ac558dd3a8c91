package report

import (
	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// PLCell is the payload of one profit and loss row.
type PLCell struct {
	Titles []model.AccountTitle
	Amount *model.Amount // nil when the row saw no postings
}

// ProfitAndLoss is the aggregated profit and loss statement. It is
// built from the income summary entries the settlement engine wrote,
// so the ledger must be closed first.
type ProfitAndLoss struct {
	Root *model.Node[*PLCell]

	// NetIncome is the period result, anchored to the credit side:
	// negative means a net loss.
	NetIncome *model.Amount

	summaries map[model.TitleKey]*model.Amount
}

// NewProfitAndLoss aggregates the ledger's income summary entries into
// the given layout.
func NewProfitAndLoss(l *ledger.Ledger, c *chart.Chart, layout []*LayoutNode) (*ProfitAndLoss, error) {
	root, err := buildTree("Profit and Loss", layout, c, func(titles []model.AccountTitle) *PLCell {
		return &PLCell{Titles: titles}
	})
	if err != nil {
		return nil, err
	}

	pl := &ProfitAndLoss{Root: root, summaries: incomeSummaries(l)}
	aggregateNode(root,
		func(cell *PLCell) []model.AccountTitle { return cell.Titles },
		func(cell *PLCell, a *model.Amount) { cell.Amount = a },
		func(t model.AccountTitle) *model.Amount { return pl.summaries[t.Key()] })
	pl.cascade()
	return pl, nil
}

// Summary returns the final period balance of one account, on its
// normal side. nil when the account was not swept.
func (pl *ProfitAndLoss) Summary(t model.AccountTitle) *model.Amount {
	return pl.summaries[t.Key()]
}

// incomeSummaries reads each account's final balance out of the income
// summary entries. The sweep posts balances on the side opposite the
// account's normal side, so the side is flipped back here.
func incomeSummaries(l *ledger.Ledger) map[model.TitleKey]*model.Amount {
	summaries := make(map[model.TitleKey]*model.Amount)
	accumulate := func(t model.AccountTitle, side model.Side, value int64) {
		if t.Equal(model.IncomeSummary) {
			return
		}
		if a, ok := summaries[t.Key()]; ok {
			a.Increase(model.NewAmount(side, value))
		} else {
			summaries[t.Key()] = model.NewAmount(side, value)
		}
	}
	for _, e := range l.Entries() {
		if !e.IsIncomeSummary() {
			continue
		}
		for _, line := range e.Debits {
			accumulate(line.Title, model.Credit, line.Amount)
		}
		for _, line := range e.Credits {
			accumulate(line.Title, model.Debit, line.Amount)
		}
	}
	return summaries
}

// cascade turns the top-level rows into running subtotals: each row
// that saw postings is overwritten with the cumulative result so far,
// and the final cumulative value is the net income.
func (pl *ProfitAndLoss) cascade() {
	var running *model.Amount
	for _, child := range pl.Root.Children {
		cell := child.Value
		if cell == nil || cell.Amount == nil {
			continue
		}
		if running == nil {
			running = cell.Amount.Clone()
		} else {
			running.Increase(cell.Amount)
		}
		cell.Amount = running.Clone()
	}

	pl.NetIncome = model.NewAmount(model.Credit, 0)
	pl.NetIncome.Increase(running)
}

// aggregateNode fills one amount column of a statement tree bottom-up:
// leaves sum their account balances, inner nodes sum their children.
// Returns the node's total, nil when no account below it saw postings.
func aggregateNode[T any](n *model.Node[T], titlesOf func(T) []model.AccountTitle, set func(T, *model.Amount), balance func(model.AccountTitle) *model.Amount) *model.Amount {
	var total *model.Amount
	add := func(a *model.Amount) {
		if a == nil {
			return
		}
		if total == nil {
			total = a.Clone()
		} else {
			total.Increase(a)
		}
	}
	if titles := titlesOf(n.Value); len(titles) > 0 {
		for _, t := range titles {
			add(balance(t))
		}
	} else {
		for _, child := range n.Children {
			add(aggregateNode(child, titlesOf, set, balance))
		}
	}
	if total != nil {
		set(n.Value, total)
	}
	return total
}
