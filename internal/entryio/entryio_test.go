package entryio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

func soloChart() *chart.Chart {
	return chart.New(chart.Default(chart.SoleProprietorship))
}

const sampleJournal = `
- date: 2023-01-04
  description: sale
  debit: [{account: Cash, amount: 1000}]
  credit: [{account: Sales, amount: 1000}]
- date: 2023-01-10
  description: supplies with tax
  debit: [{account: Supplies, amount: 500}, {account: Suspense Tax Paid, amount: 50}]
  credit: [{account: Cash, amount: 550}]
`

func TestDecode(t *testing.T) {
	entries, err := Decode(strings.NewReader(sampleJournal), soloChart())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "sale", first.Description)
	require.Len(t, first.Debits, 1)
	assert.Equal(t, model.TypeAsset, first.Debits[0].Title.Type, "type resolved from the chart")
	assert.Equal(t, int64(1000), first.Debits[0].Amount)

	second := entries[1]
	require.Len(t, second.Debits, 2)
	assert.Equal(t, "Suspense Tax Paid", second.Debits[1].Title.Name)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		journal string
		wantErr string
	}{
		{
			"unknown account",
			"- date: 2023-01-04\n  description: sale\n  debit: [{account: Nope, amount: 10}]\n  credit: [{account: Sales, amount: 10}]\n",
			`account "Nope" is not in the chart`,
		},
		{
			"unbalanced",
			"- date: 2023-01-04\n  description: sale\n  debit: [{account: Cash, amount: 11}]\n  credit: [{account: Sales, amount: 10}]\n",
			"debit total does not equal credit total",
		},
		{
			"bad date",
			"- date: 04/01/2023\n  description: sale\n  debit: [{account: Cash, amount: 10}]\n  credit: [{account: Sales, amount: 10}]\n",
			"bad date",
		},
		{
			"missing description",
			"- date: 2023-01-04\n  debit: [{account: Cash, amount: 10}]\n  credit: [{account: Sales, amount: 10}]\n",
			"no description",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.journal), soloChart())
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.ErrorContains(t, err, "journal entry 1", "position reported")
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	entries, err := Decode(strings.NewReader(""), soloChart())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := soloChart()
	original, err := Decode(strings.NewReader(sampleJournal), c)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Encode(&buf, original))
	assert.Contains(t, buf.String(), "account: Cash")

	decoded, err := Decode(strings.NewReader(buf.String()), c)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
