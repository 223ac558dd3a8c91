package report

import (
	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// Snapshot is a point-in-time balance per account title, in order of
// first appearance.
type Snapshot struct {
	titles  []model.AccountTitle
	amounts map[model.TitleKey]*model.Amount
}

func newSnapshot() *Snapshot {
	return &Snapshot{amounts: make(map[model.TitleKey]*model.Amount)}
}

func (s *Snapshot) accumulate(t model.AccountTitle, side model.Side, value int64) {
	if a, ok := s.amounts[t.Key()]; ok {
		a.Increase(model.NewAmount(side, value))
		return
	}
	s.amounts[t.Key()] = model.NewAmount(side, value)
	s.titles = append(s.titles, t)
}

// Titles returns the accounts in the snapshot in order of first
// appearance.
func (s *Snapshot) Titles() []model.AccountTitle {
	return s.titles
}

// Amount returns the balance of one account, nil when absent.
func (s *Snapshot) Amount(t model.AccountTitle) *model.Amount {
	return s.amounts[t.Key()]
}

// OpeningBalances reads the opening snapshot out of the entries the
// rule recognizes as opening entries. Lines keep their posted side.
func OpeningBalances(l *ledger.Ledger, rule model.OpeningRule) *Snapshot {
	s := newSnapshot()
	for _, e := range l.Entries() {
		if !e.IsOpening(rule) {
			continue
		}
		for _, line := range e.Debits {
			s.accumulate(line.Title, model.Debit, line.Amount)
		}
		for _, line := range e.Credits {
			s.accumulate(line.Title, model.Credit, line.Amount)
		}
	}
	return s
}

// ClosingBalances reads the closing snapshot out of the balance
// transfer entries. The sweep posts each balance on the side opposite
// the account's normal side, so the side is flipped back; the Balance
// account itself is skipped.
func ClosingBalances(l *ledger.Ledger) *Snapshot {
	s := newSnapshot()
	for _, e := range l.Entries() {
		if !e.IsBalance() {
			continue
		}
		for _, line := range e.Debits {
			if !line.Title.Equal(model.Balance) {
				s.accumulate(line.Title, model.Credit, line.Amount)
			}
		}
		for _, line := range e.Credits {
			if !line.Title.Equal(model.Balance) {
				s.accumulate(line.Title, model.Debit, line.Amount)
			}
		}
	}
	return s
}

// BSCell is the payload of one balance sheet row, with the opening and
// closing balances side by side.
type BSCell struct {
	Titles  []model.AccountTitle
	Opening *model.Amount
	Closing *model.Amount
}

// BalanceSheet is the aggregated balance sheet. It is built from the
// balance transfer entries the settlement engine wrote, so the ledger
// must be closed first.
type BalanceSheet struct {
	Root    *model.Node[*BSCell]
	Opening *Snapshot
	Closing *Snapshot
}

// NewBalanceSheet aggregates the ledger's opening and closing snapshots
// into the given layout.
func NewBalanceSheet(l *ledger.Ledger, c *chart.Chart, layout []*LayoutNode, rule model.OpeningRule) (*BalanceSheet, error) {
	root, err := buildTree("Balance Sheet", layout, c, func(titles []model.AccountTitle) *BSCell {
		return &BSCell{Titles: titles}
	})
	if err != nil {
		return nil, err
	}

	bs := &BalanceSheet{
		Root:    root,
		Opening: OpeningBalances(l, rule),
		Closing: ClosingBalances(l),
	}
	titlesOf := func(cell *BSCell) []model.AccountTitle { return cell.Titles }
	aggregateNode(root, titlesOf,
		func(cell *BSCell, a *model.Amount) { cell.Opening = a },
		bs.Opening.Amount)
	aggregateNode(root, titlesOf,
		func(cell *BSCell, a *model.Amount) { cell.Closing = a },
		bs.Closing.Amount)
	return bs, nil
}
