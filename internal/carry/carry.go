// Package carry derives the opening journal entries for the next
// period from a closed ledger: the balance sheet accounts brought
// forward, and the inventory roll from ending to beginning inventory.
package carry

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
	"github.com/bluebooks-dev/bluebooks/internal/report"
)

// Opening entry captions. The corporate caption doubles as the marker
// the opening-entry recognizer looks for next period.
const (
	CaptionOpeningCapital = "Opening capital"
	CaptionBroughtForward = "Balance brought forward"
	CaptionInventoryRoll  = "Inventory brought forward"
)

// Names binds the carry-forward to account names in the chart.
type Names struct {
	Capital            string // solo: the account the net position folds into
	OwnersDrawing      string
	OwnersContribution string
	EndingInventory    string
	BeginningInventory string
}

// DefaultNames returns the bindings matching the default chart.
func DefaultNames() Names {
	return Names{
		Capital:            "Proprietor's Capital",
		OwnersDrawing:      "Owner's Drawing",
		OwnersContribution: "Owner's Contribution",
		EndingInventory:    "Ending Inventory",
		BeginningInventory: "Beginning Inventory",
	}
}

// Generator derives next-period opening entries.
type Generator struct {
	chart  *chart.Chart
	entity chart.Entity
	names  Names
	log    *zap.Logger
}

// New creates a generator. A nil logger disables logging.
func New(c *chart.Chart, entity chart.Entity, names Names, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{chart: c, entity: entity, names: names, log: log}
}

// Generate derives the opening entries for the period after the given
// closing date, reading the closing snapshot out of the ledger's
// balance transfer entries. The ledger must be closed.
//
// Corporations get the snapshot back verbatim in one entry. For sole
// proprietors the equity side is folded into a fresh capital balance:
// assets minus the drawing account, less liabilities minus the
// contribution account. That fold is split over two entries, one per
// side, so each stays balanced on its own.
func (g *Generator) Generate(l *ledger.Ledger, closingDate time.Time) ([]*model.JournalEntry, error) {
	snapshot := report.ClosingBalances(l)
	openingDate := closingDate.AddDate(0, 0, 1)

	var entries []*model.JournalEntry
	if g.entity.Solo() {
		solo, err := g.soloOpening(snapshot, openingDate)
		if err != nil {
			return nil, err
		}
		entries = solo
	} else {
		entries = g.corporateOpening(snapshot, openingDate)
	}

	entries = append(entries, g.inventoryRolls(l, openingDate)...)
	g.log.Info("opening entries generated",
		zap.Time("opening_date", openingDate), zap.Int("entries", len(entries)))
	return entries, nil
}

// split partitions a snapshot into debit-normal and credit-normal
// lines, skipping the named accounts. A balance sitting on the wrong
// side keeps its magnitude and moves to the other slice. The closing
// flag is dropped: brought-forward balances are ordinary postings next
// period, even when the balance sat on a settlement account.
func split(snapshot *report.Snapshot, skip func(model.AccountTitle) bool) (debits, credits []model.Line) {
	for _, t := range snapshot.Titles() {
		if skip(t) {
			continue
		}
		t.Closing = false
		a := snapshot.Amount(t)
		value, side := a.Value(), a.Side()
		if value == 0 {
			continue
		}
		if value < 0 {
			value, side = -value, side.Opposite()
		}
		if side == model.Debit {
			debits = append(debits, model.Line{Title: t, Amount: value})
		} else {
			credits = append(credits, model.Line{Title: t, Amount: value})
		}
	}
	return debits, credits
}

func (g *Generator) corporateOpening(snapshot *report.Snapshot, date time.Time) []*model.JournalEntry {
	debits, credits := split(snapshot, func(model.AccountTitle) bool { return false })
	if len(debits) == 0 && len(credits) == 0 {
		return nil
	}
	g.chart.SortLines(debits)
	g.chart.SortLines(credits)
	return []*model.JournalEntry{
		model.NewEntry(date, CaptionBroughtForward, debits, credits),
	}
}

func (g *Generator) soloOpening(snapshot *report.Snapshot, date time.Time) ([]*model.JournalEntry, error) {
	capital, ok := g.chart.ByName(g.names.Capital)
	if !ok {
		return nil, fmt.Errorf("carry forward: account %q is not in the chart", g.names.Capital)
	}

	// Drawing and contribution close into capital rather than carrying
	// over; equity balances fold into the fresh capital figure too.
	folded := func(t model.AccountTitle) bool {
		return t.Type == model.TypeEquity ||
			t.Name == g.names.OwnersDrawing ||
			t.Name == g.names.OwnersContribution
	}
	debits, credits := split(snapshot, folded)
	g.chart.SortLines(debits)
	g.chart.SortLines(credits)

	var entries []*model.JournalEntry
	if len(debits) > 0 {
		var total int64
		for _, line := range debits {
			total += line.Amount
		}
		entries = append(entries, model.NewEntry(date, CaptionOpeningCapital,
			debits, []model.Line{{Title: capital, Amount: total}}))
	}
	if len(credits) > 0 {
		var total int64
		for _, line := range credits {
			total += line.Amount
		}
		entries = append(entries, model.NewEntry(date, CaptionOpeningCapital,
			[]model.Line{{Title: capital, Amount: total}}, credits))
	}
	return entries, nil
}

// inventoryRolls moves this period's ending inventory into next
// period's beginning inventory, one opening entry per posting. A
// credit-side posting comes back debiting beginning inventory against
// the source entry's debit lines; a debit-side posting is mirrored,
// crediting beginning inventory against the source entry's credit
// lines. Nothing is emitted when the chart lacks the inventory
// accounts.
func (g *Generator) inventoryRolls(l *ledger.Ledger, date time.Time) []*model.JournalEntry {
	ending, ok := g.chart.ByName(g.names.EndingInventory)
	if !ok {
		return nil
	}
	beginning, ok := g.chart.ByName(g.names.BeginningInventory)
	if !ok {
		return nil
	}

	var rolls []*model.JournalEntry
	for _, e := range l.Entries() {
		if e.IsClosing() {
			continue
		}
		for _, line := range e.Credits {
			if line.Title.Equal(ending) && line.Amount != model.AmountUnset {
				rolls = append(rolls, model.NewEntry(date, CaptionInventoryRoll,
					[]model.Line{{Title: beginning, Amount: line.Amount}},
					counterLines(e.Debits)))
				break
			}
		}
		for _, line := range e.Debits {
			if line.Title.Equal(ending) && line.Amount != model.AmountUnset {
				rolls = append(rolls, model.NewEntry(date, CaptionInventoryRoll,
					counterLines(e.Credits),
					[]model.Line{{Title: beginning, Amount: line.Amount}}))
				break
			}
		}
	}
	return rolls
}

// counterLines copies the counterparty lines of a source entry into a
// generated opening entry, dropping page references.
func counterLines(lines []model.Line) []model.Line {
	out := make([]model.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, model.Line{Title: l.Title, Amount: l.Amount})
	}
	return out
}
