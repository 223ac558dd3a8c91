// Package close derives the fiscal closing entries for a period:
// proportional division of mixed-use expenses, consumption tax
// settlement, the income summary sweep and the balance sweep. All
// derived entries are appended to the ledger dated on the closing date.
package close

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// Descriptions stamped on derived closing entries. The carry-forward
// and reporting layers recognize entries by these strings, so they are
// part of the ledger format.
const (
	DescProportionalDivision = "Proportional division"
	DescTaxSettlement        = "Tax suspense settlement"
	DescRevenueSweep         = "Revenue transfer to income summary"
	DescExpenseSweep         = "Expense transfer to income summary"
	DescNetIncomeTransfer    = "Net income transfer to equity"
	DescAssetSweep           = "Asset balance transfer"
	DescLiabilitySweep       = "Liability balance transfer"
	DescEquitySweep          = "Equity balance transfer"
)

// SpecialNames binds the settlement steps to account names in the
// chart. A step whose accounts are absent is skipped.
type SpecialNames struct {
	OwnersDrawing       string
	SuspenseTaxPaid     string
	SuspenseTaxReceived string
	TaxReceivable       string
	TaxPayable          string
}

// DefaultNames returns the bindings matching the default chart.
func DefaultNames() SpecialNames {
	return SpecialNames{
		OwnersDrawing:       "Owner's Drawing",
		SuspenseTaxPaid:     "Suspense Tax Paid",
		SuspenseTaxReceived: "Suspense Tax Received",
		TaxReceivable:       "Tax Receivable",
		TaxPayable:          "Tax Payable",
	}
}

// Options tune the non-fatal edges of settlement.
type Options struct {
	// MissingAccountFatal turns a skippable missing-account condition
	// into an error instead of a note.
	MissingAccountFatal bool

	// SuppressZeroNetIncome drops the net income transfer entry when
	// the period nets to zero. By default the entry is still written so
	// the equity statement shows an explicit zero.
	SuppressZeroNetIncome bool
}

// Division marks an account whose expense is split between business
// and private use. BusinessRatio is the business share, in [0, 1].
type Division struct {
	Title         model.AccountTitle
	BusinessRatio decimal.Decimal
}

// Settlement derives closing entries against a chart of accounts.
type Settlement struct {
	chart  *chart.Chart
	entity chart.Entity
	names  SpecialNames
	opts   Options
	log    *zap.Logger
	notes  []string
}

// New creates a settlement engine. A nil logger disables logging.
func New(c *chart.Chart, entity chart.Entity, names SpecialNames, opts Options, log *zap.Logger) *Settlement {
	if log == nil {
		log = zap.NewNop()
	}
	return &Settlement{chart: c, entity: entity, names: names, opts: opts, log: log}
}

// Notes returns the informational messages collected during the last
// AddClosingEntries run, in order.
func (s *Settlement) Notes() []string {
	return s.notes
}

// AddClosingEntries appends the full set of closing entries for the
// period to the ledger. On error the ledger is left as it was passed
// in only if the error occurs before the first append; settlement is
// not transactional and callers should discard the ledger on error.
func (s *Settlement) AddClosingEntries(l *ledger.Ledger, divisions []Division) error {
	s.notes = nil

	date, err := ClosingDate(l, s.entity)
	if err != nil {
		return fmt.Errorf("resolving closing date: %w", err)
	}
	s.log.Info("closing period", zap.Time("closing_date", date))

	if err := s.divideProportionally(l, divisions, date); err != nil {
		return err
	}
	if err := s.settleTaxSuspense(l, date); err != nil {
		return err
	}

	net := s.sweepInto(l, model.IncomeSummary, model.TypeRevenue, l.UsedTitles(model.TypeRevenue), DescRevenueSweep, date)
	net -= s.sweepInto(l, model.IncomeSummary, model.TypeExpense, l.UsedTitles(model.TypeExpense), DescExpenseSweep, date)
	equity := s.transferNetIncome(l, net, date)

	s.sweepInto(l, model.Balance, model.TypeAsset, l.UsedTitles(model.TypeAsset), DescAssetSweep, date)
	s.sweepInto(l, model.Balance, model.TypeLiability, l.UsedTitles(model.TypeLiability), DescLiabilitySweep, date)

	// The transfer target is a closing account, so it has to be collected
	// by hand. It carries the period's net income at this point. When a
	// brought-forward balance already posted the same account as an
	// ordinary title, that title collects the whole balance and the
	// target must not be added a second time.
	equityTitles := l.UsedTitles(model.TypeEquity)
	if l.Uses(equity) {
		carried := false
		for _, t := range equityTitles {
			if t.Equal(equity) {
				carried = true
				break
			}
		}
		if !carried {
			equityTitles = append(equityTitles, equity)
		}
	}
	s.sweepInto(l, model.Balance, model.TypeEquity, equityTitles, DescEquitySweep, date)

	return nil
}

// classified splits per-title net balances by sign. Positive lines
// carry balances sitting on the title's normal side; negative lines
// carry reversed balances, stored with the magnitude flipped positive.
type classified struct {
	positive, negative           []model.Line
	positiveTotal, negativeTotal int64
	net                          int64
}

func (s *Settlement) classify(l *ledger.Ledger, titles []model.AccountTitle) classified {
	var c classified
	for _, t := range titles {
		balance := l.NetBalance(t)
		if balance >= 0 {
			c.positive = append(c.positive, model.Line{Title: t, Amount: balance})
			c.positiveTotal += balance
		} else {
			c.negative = append(c.negative, model.Line{Title: t, Amount: -balance})
			c.negativeTotal += -balance
		}
		c.net += balance
	}
	s.chart.SortLines(c.positive)
	s.chart.SortLines(c.negative)
	return c
}

// sweepInto zeroes every used title of the given type against the
// counter account and returns the type's net normal-side balance.
// Balances on the normal side (zero included) are posted on the
// opposite side; reversed balances get a second entry on the normal
// side. The normal-side entry is always emitted first.
func (s *Settlement) sweepInto(l *ledger.Ledger, counter model.AccountTitle, typ model.AccountType, titles []model.AccountTitle, desc string, date time.Time) int64 {
	c := s.classify(l, titles)
	counterLine := func(amount int64) []model.Line {
		return []model.Line{{Title: counter, Amount: amount}}
	}
	if typ.NormalSide() == model.Debit {
		if len(c.positive) > 0 {
			l.Append(model.NewEntry(date, desc, counterLine(c.positiveTotal), c.positive))
		}
		if len(c.negative) > 0 {
			l.Append(model.NewEntry(date, desc, c.negative, counterLine(c.negativeTotal)))
		}
	} else {
		if len(c.positive) > 0 {
			l.Append(model.NewEntry(date, desc, c.positive, counterLine(c.positiveTotal)))
		}
		if len(c.negative) > 0 {
			l.Append(model.NewEntry(date, desc, counterLine(c.negativeTotal), c.negative))
		}
	}
	return c.net
}

// transferNetIncome moves the income summary balance into equity:
// retained earnings for corporations, pretax income for sole
// proprietors. A zero period still gets an explicit entry unless
// suppressed. Returns the target account.
func (s *Settlement) transferNetIncome(l *ledger.Ledger, net int64, date time.Time) model.AccountTitle {
	equity := model.RetainedEarnings
	if s.entity.Solo() {
		equity = model.PretaxIncome
	}
	if net == 0 && s.opts.SuppressZeroNetIncome {
		s.skip("net income transfer suppressed: period nets to zero")
		return equity
	}
	if net >= 0 {
		l.Append(model.NewEntry(date, DescNetIncomeTransfer,
			[]model.Line{{Title: model.IncomeSummary, Amount: net}},
			[]model.Line{{Title: equity, Amount: net}}))
	} else {
		l.Append(model.NewEntry(date, DescNetIncomeTransfer,
			[]model.Line{{Title: equity, Amount: -net}},
			[]model.Line{{Title: model.IncomeSummary, Amount: -net}}))
	}
	s.log.Info("net income transferred", zap.Int64("net", net), zap.String("equity", equity.Name))
	return equity
}

// divideProportionally reclassifies the private share of mixed-use
// account balances to the owner's drawing account. The private share is
// balance times one minus the business ratio, rounded half up.
func (s *Settlement) divideProportionally(l *ledger.Ledger, divisions []Division, date time.Time) error {
	if len(divisions) == 0 {
		return nil
	}
	drawing, ok := s.chart.ByName(s.names.OwnersDrawing)
	if !ok {
		if s.opts.MissingAccountFatal {
			return fmt.Errorf("proportional division: account %q is not in the chart", s.names.OwnersDrawing)
		}
		s.skip(fmt.Sprintf("proportional division skipped: account %q is not in the chart", s.names.OwnersDrawing))
		return nil
	}

	var debits, credits []model.Line
	for _, d := range divisions {
		debitTotal := l.DebitTotal(d.Title)
		creditTotal := l.CreditTotal(d.Title)
		switch {
		case debitTotal > creditTotal:
			if private := privateShare(debitTotal-creditTotal, d.BusinessRatio); private != 0 {
				credits = append(credits, model.Line{Title: d.Title, Amount: private})
			}
		case creditTotal > debitTotal:
			if private := privateShare(creditTotal-debitTotal, d.BusinessRatio); private != 0 {
				debits = append(debits, model.Line{Title: d.Title, Amount: private})
			}
		}
	}
	s.chart.SortLines(debits)
	s.chart.SortLines(credits)

	if len(debits) > 0 {
		var total int64
		for _, line := range debits {
			total += line.Amount
		}
		l.Append(model.NewEntry(date, DescProportionalDivision,
			debits, []model.Line{{Title: drawing, Amount: total}}))
	}
	if len(credits) > 0 {
		var total int64
		for _, line := range credits {
			total += line.Amount
		}
		l.Append(model.NewEntry(date, DescProportionalDivision,
			[]model.Line{{Title: drawing, Amount: total}}, credits))
	}
	return nil
}

func privateShare(balance int64, businessRatio decimal.Decimal) int64 {
	private := decimal.NewFromInt(1).Sub(businessRatio)
	return decimal.NewFromInt(balance).Mul(private).Round(0).IntPart()
}

func (s *Settlement) skip(msg string) {
	s.notes = append(s.notes, msg)
	s.log.Warn(msg)
}
