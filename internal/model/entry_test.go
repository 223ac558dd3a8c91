package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cash     = AccountTitle{Type: TypeAsset, Name: "Cash"}
	sales    = AccountTitle{Type: TypeRevenue, Name: "Sales"}
	capital  = AccountTitle{Type: TypeEquity, Name: "Proprietor's Capital"}
	supplies = AccountTitle{Type: TypeExpense, Name: "Supplies"}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEntryTotals(t *testing.T) {
	e := NewEntry(date(2023, 4, 1), "sale",
		[]Line{{Title: cash, Amount: 800}, {Title: supplies, Amount: 200}},
		[]Line{{Title: sales, Amount: 1000}})
	assert.Equal(t, int64(1000), e.DebitTotal())
	assert.Equal(t, int64(1000), e.CreditTotal())
	assert.NoError(t, e.Validate())
}

func TestEntryPredicates(t *testing.T) {
	plain := NewEntry(date(2023, 4, 2), "sale",
		[]Line{{Title: cash, Amount: 100}},
		[]Line{{Title: sales, Amount: 100}})
	assert.False(t, plain.IsClosing())
	assert.False(t, plain.IsIncomeSummary())
	assert.False(t, plain.IsBalance())

	sweep := NewEntry(date(2023, 12, 31), "Revenue transfer to income summary",
		[]Line{{Title: sales, Amount: 100}},
		[]Line{{Title: IncomeSummary, Amount: 100}})
	assert.True(t, sweep.IsClosing())
	assert.True(t, sweep.IsIncomeSummary())
	assert.False(t, sweep.IsBalance())

	balance := NewEntry(date(2023, 12, 31), "Asset balance transfer",
		[]Line{{Title: Balance, Amount: 100}},
		[]Line{{Title: cash, Amount: 100}})
	assert.True(t, balance.IsClosing())
	assert.True(t, balance.IsBalance())
}

func TestIsOpening(t *testing.T) {
	opening := date(2023, 4, 1)
	soloRule := OpeningRule{SoloProprietor: true, OpeningDate: opening, CapitalName: "Proprietor's Capital"}
	corpRule := OpeningRule{OpeningDate: opening, Captions: []string{"Balance brought forward", "Opening balance"}}

	soloOpen := NewEntry(opening, "opening",
		[]Line{{Title: cash, Amount: 5000}},
		[]Line{{Title: capital, Amount: 5000}})
	assert.True(t, soloOpen.IsOpening(soloRule))
	assert.False(t, soloOpen.IsOpening(corpRule), "caption does not match")

	corpOpen := NewEntry(opening, "Balance brought forward",
		[]Line{{Title: cash, Amount: 5000}},
		[]Line{{Title: capital, Amount: 5000}})
	assert.True(t, corpOpen.IsOpening(corpRule))

	laterEntry := NewEntry(date(2023, 4, 2), "opening",
		[]Line{{Title: cash, Amount: 5000}},
		[]Line{{Title: capital, Amount: 5000}})
	assert.False(t, laterEntry.IsOpening(soloRule), "not at the opening date")

	// A balance-transfer entry touches the capital account too, but must
	// never be treated as an opening entry.
	closing := NewEntry(opening, "Equity balance transfer",
		[]Line{{Title: capital, Amount: 5000}},
		[]Line{{Title: Balance, Amount: 5000}})
	assert.False(t, closing.IsOpening(soloRule))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		entry *JournalEntry
		code  EntryErrorCode
	}{
		{
			"no date",
			NewEntry(time.Time{}, "x", []Line{{Title: cash, Amount: 1}}, []Line{{Title: sales, Amount: 1}}),
			ErrNoDate,
		},
		{
			"no description",
			NewEntry(date(2023, 4, 1), "", []Line{{Title: cash, Amount: 1}}, []Line{{Title: sales, Amount: 1}}),
			ErrNoDescription,
		},
		{
			"no lines",
			NewEntry(date(2023, 4, 1), "x", nil, nil),
			ErrNoLines,
		},
		{
			"no debit",
			NewEntry(date(2023, 4, 1), "x", nil, []Line{{Title: sales, Amount: 1}}),
			ErrNoDebit,
		},
		{
			"no credit",
			NewEntry(date(2023, 4, 1), "x", []Line{{Title: cash, Amount: 1}}, nil),
			ErrNoCredit,
		},
		{
			"staged debit amount",
			NewEntry(date(2023, 4, 1), "x", []Line{{Title: cash, Amount: AmountUnset}}, []Line{{Title: sales, Amount: 1}}),
			ErrDebitAmountUnset,
		},
		{
			"unbalanced",
			NewEntry(date(2023, 4, 1), "x", []Line{{Title: cash, Amount: 2}}, []Line{{Title: sales, Amount: 1}}),
			ErrUnbalanced,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			require.Error(t, err)
			var entryErr *EntryError
			require.ErrorAs(t, err, &entryErr)
			assert.Equal(t, tt.code, entryErr.Code)
		})
	}
}

func TestTitleIdentity(t *testing.T) {
	a := AccountTitle{Type: TypeAsset, Name: "Cash"}
	b := AccountTitle{Type: TypeAsset, Name: "Cash", Closing: true}
	c := AccountTitle{Type: TypeExpense, Name: "Cash"}
	assert.True(t, a.Equal(b), "closing flag is not identity")
	assert.False(t, a.Equal(c), "type is identity")
	assert.Equal(t, a.Key(), b.Key())
}
