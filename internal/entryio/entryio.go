// Package entryio reads and writes journal entries as YAML. The same
// format serves both directions: the CLI loads a period's journal from
// it, and the carry-forward writes next period's opening entries back
// out in it.
//
//	- date: 2023-01-04
//	  description: sale
//	  debit:  [{account: Cash, amount: 1000}]
//	  credit: [{account: Sales, amount: 1000}]
package entryio

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

const dateLayout = "2006-01-02"

type lineDoc struct {
	Account string `yaml:"account"`
	Amount  int64  `yaml:"amount"`
}

type entryDoc struct {
	Date        string    `yaml:"date"`
	Description string    `yaml:"description"`
	Debit       []lineDoc `yaml:"debit,flow"`
	Credit      []lineDoc `yaml:"credit,flow"`
}

// Decode parses journal entries, resolving account names against the
// chart. Every entry is validated; the first problem aborts with the
// entry's position in the document.
func Decode(r io.Reader, c *chart.Chart) ([]*model.JournalEntry, error) {
	var docs []entryDoc
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing journal: %w", err)
	}

	entries := make([]*model.JournalEntry, 0, len(docs))
	for i, doc := range docs {
		e, err := decodeEntry(doc, c)
		if err != nil {
			return nil, fmt.Errorf("journal entry %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeEntry(doc entryDoc, c *chart.Chart) (*model.JournalEntry, error) {
	var date time.Time
	if doc.Date != "" {
		parsed, err := time.Parse(dateLayout, doc.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", doc.Date, err)
		}
		date = parsed
	}

	lines := func(docs []lineDoc) ([]model.Line, error) {
		out := make([]model.Line, 0, len(docs))
		for _, ld := range docs {
			t, ok := c.ByName(ld.Account)
			if !ok {
				return nil, fmt.Errorf("account %q is not in the chart", ld.Account)
			}
			out = append(out, model.Line{Title: t, Amount: ld.Amount})
		}
		return out, nil
	}
	debits, err := lines(doc.Debit)
	if err != nil {
		return nil, err
	}
	credits, err := lines(doc.Credit)
	if err != nil {
		return nil, err
	}

	e := model.NewEntry(date, doc.Description, debits, credits)
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Encode writes journal entries in the same format Decode reads.
func Encode(w io.Writer, entries []*model.JournalEntry) error {
	docs := make([]entryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, entryDoc{
			Date:        e.Date.Format(dateLayout),
			Description: e.Description,
			Debit:       encodeLines(e.Debits),
			Credit:      encodeLines(e.Credits),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return enc.Close()
}

func encodeLines(lines []model.Line) []lineDoc {
	out := make([]lineDoc, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineDoc{Account: l.Title.Name, Amount: l.Amount})
	}
	return out
}
