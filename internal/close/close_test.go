package close

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

var (
	cash         = model.AccountTitle{Type: model.TypeAsset, Name: "Cash"}
	drawing      = model.AccountTitle{Type: model.TypeAsset, Name: "Owner's Drawing"}
	suspPaid     = model.AccountTitle{Type: model.TypeAsset, Name: "Suspense Tax Paid"}
	taxRecv      = model.AccountTitle{Type: model.TypeAsset, Name: "Tax Receivable"}
	checking     = model.AccountTitle{Type: model.TypeAsset, Name: "Checking Deposits"}
	suspReceived = model.AccountTitle{Type: model.TypeLiability, Name: "Suspense Tax Received"}
	taxPayable   = model.AccountTitle{Type: model.TypeLiability, Name: "Tax Payable"}
	capitalStock = model.AccountTitle{Type: model.TypeEquity, Name: "Capital Stock"}
	sales        = model.AccountTitle{Type: model.TypeRevenue, Name: "Sales"}
	rent         = model.AccountTitle{Type: model.TypeExpense, Name: "Rent"}
	utilities    = model.AccountTitle{Type: model.TypeExpense, Name: "Utilities"}
	supplies     = model.AccountTitle{Type: model.TypeExpense, Name: "Supplies"}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(date time.Time, desc string, debits, credits []model.Line) *model.JournalEntry {
	return model.NewEntry(date, desc, debits, credits)
}

func lines(t model.AccountTitle, amount int64) []model.Line {
	return []model.Line{{Title: t, Amount: amount}}
}

func soloSettlement(opts Options) *Settlement {
	c := chart.New(chart.Default(chart.SoleProprietorship))
	return New(c, chart.SoleProprietorship, DefaultNames(), opts, nil)
}

func corpSettlement(opts Options) *Settlement {
	c := chart.New(chart.Default(chart.Corporation))
	return New(c, chart.Corporation, DefaultNames(), opts, nil)
}

func soloLedger() *ledger.Ledger {
	return ledger.New([]*model.JournalEntry{
		entry(date(2023, 3, 15), "sale", lines(cash, 500000), lines(sales, 500000)),
		entry(date(2023, 4, 1), "rent", lines(rent, 100000), lines(cash, 100000)),
		entry(date(2023, 5, 1), "utilities", lines(utilities, 10000), lines(cash, 10000)),
		entry(date(2023, 6, 1), "sale with tax",
			lines(cash, 110000),
			[]model.Line{{Title: sales, Amount: 100000}, {Title: suspReceived, Amount: 10000}}),
		entry(date(2023, 7, 1), "supplies",
			[]model.Line{{Title: supplies, Amount: 10000}, {Title: suspPaid, Amount: 1000}},
			lines(cash, 11000)),
	})
}

func TestAddClosingEntriesSoleProprietor(t *testing.T) {
	s := soloSettlement(Options{})
	l := soloLedger()
	divisions := []Division{{Title: utilities, BusinessRatio: decimal.NewFromFloat(0.6)}}

	require.NoError(t, s.AddClosingEntries(l, divisions))

	added := l.Entries()[5:]
	require.Len(t, added, 8)
	wantDesc := []string{
		DescProportionalDivision,
		DescTaxSettlement,
		DescRevenueSweep,
		DescExpenseSweep,
		DescNetIncomeTransfer,
		DescAssetSweep,
		DescLiabilitySweep,
		DescEquitySweep,
	}
	for i, e := range added {
		assert.Equal(t, wantDesc[i], e.Description)
		assert.Equal(t, date(2023, 12, 31), e.Date)
		require.NoError(t, e.Validate(), "entry %d", i)
		assert.Equal(t, e.DebitTotal(), e.CreditTotal(), "entry %d balances", i)
	}

	division := added[0]
	assert.Equal(t, []model.Line{{Title: drawing, Amount: 4000}}, division.Debits)
	assert.Equal(t, []model.Line{{Title: utilities, Amount: 4000}}, division.Credits)

	tax := added[1]
	assert.Equal(t, []model.Line{{Title: suspReceived, Amount: 10000}}, tax.Debits)
	assert.Equal(t, []model.Line{
		{Title: suspPaid, Amount: 1000},
		{Title: taxPayable, Amount: 9000},
	}, tax.Credits)

	revenue := added[2]
	assert.Equal(t, []model.Line{{Title: sales, Amount: 600000}}, revenue.Debits)
	assert.Equal(t, int64(600000), revenue.Credits[0].Amount)

	expense := added[3]
	assert.Equal(t, int64(116000), expense.DebitTotal())
	assert.Equal(t, []model.Line{
		{Title: supplies, Amount: 10000},
		{Title: rent, Amount: 100000},
		{Title: utilities, Amount: 6000},
	}, expense.Credits, "chart order, post-division balance")

	transfer := added[4]
	assert.True(t, transfer.Touches(model.PretaxIncome))
	assert.Equal(t, int64(484000), transfer.DebitTotal())

	assets := added[5]
	assert.Equal(t, []model.Line{
		{Title: cash, Amount: 489000},
		{Title: suspPaid, Amount: 0},
		{Title: drawing, Amount: 4000},
	}, assets.Credits, "zero balances stay on the statement")
	assert.Equal(t, []model.Line{{Title: model.Balance, Amount: 493000}}, assets.Debits)

	liabilities := added[6]
	assert.Equal(t, []model.Line{
		{Title: suspReceived, Amount: 0},
		{Title: taxPayable, Amount: 9000},
	}, liabilities.Debits)

	equitySweep := added[7]
	assert.True(t, equitySweep.Touches(model.PretaxIncome))
	assert.Equal(t, int64(484000), equitySweep.CreditTotal())

	// After closing everything nets to zero, the Balance account included.
	for _, title := range []model.AccountTitle{
		cash, drawing, suspPaid, suspReceived, taxPayable,
		sales, rent, utilities, supplies,
		model.IncomeSummary, model.PretaxIncome, model.Balance,
	} {
		assert.Zero(t, l.NetBalance(title), title.String())
	}
}

func TestAddClosingEntriesIsDeterministic(t *testing.T) {
	divisions := []Division{{Title: utilities, BusinessRatio: decimal.NewFromFloat(0.6)}}

	first := soloLedger()
	require.NoError(t, soloSettlement(Options{}).AddClosingEntries(first, divisions))
	second := soloLedger()
	require.NoError(t, soloSettlement(Options{}).AddClosingEntries(second, divisions))

	assert.Equal(t, first.Entries(), second.Entries())
}

func TestAddClosingEntriesCorporation(t *testing.T) {
	s := corpSettlement(Options{})
	l := ledger.New([]*model.JournalEntry{
		entry(date(2023, 4, 1), "Balance brought forward", lines(cash, 1000), lines(capitalStock, 1000)),
		entry(date(2023, 5, 1), "sale", lines(cash, 500), lines(sales, 500)),
	})

	require.NoError(t, s.AddClosingEntries(l, nil))

	added := l.Entries()[2:]
	require.Len(t, added, 4)
	for _, e := range added {
		assert.Equal(t, date(2024, 3, 31), e.Date)
	}

	transfer := added[1]
	assert.Equal(t, DescNetIncomeTransfer, transfer.Description)
	assert.True(t, transfer.Touches(model.RetainedEarnings))

	equitySweep := added[3]
	assert.Equal(t, []model.Line{
		{Title: capitalStock, Amount: 1000},
		{Title: model.RetainedEarnings, Amount: 500},
	}, equitySweep.Debits)

	assert.Zero(t, l.NetBalance(model.Balance))
}

func TestAddClosingEntriesCarriedRetainedEarnings(t *testing.T) {
	// Period two of a corporation: the opening entry posts retained
	// earnings as an ordinary account, and the sweep must collapse the
	// carried balance and the period's transfer into one line.
	retained := model.AccountTitle{Type: model.TypeEquity, Name: "Retained Earnings"}
	s := corpSettlement(Options{})
	l := ledger.New([]*model.JournalEntry{
		entry(date(2024, 4, 1), "Balance brought forward",
			lines(cash, 1100),
			[]model.Line{{Title: capitalStock, Amount: 1000}, {Title: retained, Amount: 100}}),
		entry(date(2024, 5, 1), "sale", lines(cash, 50), lines(sales, 50)),
	})

	require.NoError(t, s.AddClosingEntries(l, nil))

	var retainedLines int
	for _, e := range l.Entries() {
		if e.Description != DescEquitySweep {
			continue
		}
		for _, line := range e.Debits {
			if line.Title.Equal(model.RetainedEarnings) {
				retainedLines++
				assert.Equal(t, int64(150), line.Amount, "carried 100 plus 50 net income")
			}
		}
	}
	assert.Equal(t, 1, retainedLines)

	assert.Equal(t, int64(1150), l.DebitTotal(model.Balance))
	assert.Equal(t, int64(1150), l.CreditTotal(model.Balance))
	assert.Zero(t, l.NetBalance(model.Balance))
}

func TestSweepReversedBalance(t *testing.T) {
	s := corpSettlement(Options{})
	l := ledger.New([]*model.JournalEntry{
		entry(date(2023, 4, 1), "sale", lines(cash, 300), lines(sales, 300)),
		entry(date(2023, 4, 2), "rent", lines(rent, 100), lines(checking, 100)),
	})

	require.NoError(t, s.AddClosingEntries(l, nil))

	var assetEntries []*model.JournalEntry
	for _, e := range l.Entries() {
		if e.Description == DescAssetSweep {
			assetEntries = append(assetEntries, e)
		}
	}
	require.Len(t, assetEntries, 2)
	// Normal-side balances first, reversed balances second.
	assert.Equal(t, []model.Line{{Title: cash, Amount: 300}}, assetEntries[0].Credits)
	assert.Equal(t, []model.Line{{Title: checking, Amount: 100}}, assetEntries[1].Debits)
	assert.Equal(t, []model.Line{{Title: model.Balance, Amount: 100}}, assetEntries[1].Credits)

	assert.Zero(t, l.NetBalance(model.Balance))
}

func TestZeroNetIncomeTransfer(t *testing.T) {
	newLedger := func() *ledger.Ledger {
		return ledger.New([]*model.JournalEntry{
			entry(date(2023, 2, 1), "sale", lines(cash, 100), lines(sales, 100)),
			entry(date(2023, 3, 1), "rent", lines(rent, 100), lines(cash, 100)),
		})
	}

	l := newLedger()
	require.NoError(t, soloSettlement(Options{}).AddClosingEntries(l, nil))
	var found *model.JournalEntry
	for _, e := range l.Entries() {
		if e.Description == DescNetIncomeTransfer {
			found = e
		}
	}
	require.NotNil(t, found, "zero net income is still posted")
	assert.Zero(t, found.DebitTotal())
	assert.True(t, found.Touches(model.PretaxIncome))

	l = newLedger()
	s := soloSettlement(Options{SuppressZeroNetIncome: true})
	require.NoError(t, s.AddClosingEntries(l, nil))
	for _, e := range l.Entries() {
		assert.NotEqual(t, DescNetIncomeTransfer, e.Description)
	}
	assert.NotEmpty(t, s.Notes())
}

func TestProportionalDivisionCreditBalance(t *testing.T) {
	s := soloSettlement(Options{})
	l := ledger.New([]*model.JournalEntry{
		entry(date(2023, 1, 10), "refund", lines(cash, 1000), lines(utilities, 1000)),
	})
	divisions := []Division{{Title: utilities, BusinessRatio: decimal.NewFromFloat(0.7)}}

	require.NoError(t, s.AddClosingEntries(l, divisions))

	division := l.Entries()[1]
	require.Equal(t, DescProportionalDivision, division.Description)
	assert.Equal(t, []model.Line{{Title: utilities, Amount: 300}}, division.Debits)
	assert.Equal(t, []model.Line{{Title: drawing, Amount: 300}}, division.Credits)
}

func TestProportionalDivisionMissingDrawing(t *testing.T) {
	l := ledger.New([]*model.JournalEntry{
		entry(date(2023, 4, 1), "utilities", lines(utilities, 100), lines(cash, 100)),
	})
	divisions := []Division{{Title: utilities, BusinessRatio: decimal.NewFromFloat(0.6)}}

	s := corpSettlement(Options{})
	require.NoError(t, s.AddClosingEntries(l, divisions))
	require.NotEmpty(t, s.Notes())
	for _, e := range l.Entries() {
		assert.NotEqual(t, DescProportionalDivision, e.Description)
	}

	s = corpSettlement(Options{MissingAccountFatal: true})
	err := s.AddClosingEntries(ledger.New(l.Entries()[:1]), divisions)
	assert.ErrorContains(t, err, "Owner's Drawing")
}

func TestPrivateShareRounding(t *testing.T) {
	ratio := decimal.NewFromFloat(0.6)
	tests := []struct {
		balance int64
		want    int64
	}{
		{10000, 4000},
		{10001, 4000}, // 4000.4 rounds down
		{10004, 4002}, // 4001.6 rounds up
		{5, 2},        // 2.0 exactly
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, privateShare(tt.balance, ratio), "balance %d", tt.balance)
	}

	// Halves round away from zero.
	assert.Equal(t, int64(3), privateShare(5, decimal.NewFromFloat(0.5)))
}
