// Package ledger holds the in-memory journal the settlement engine
// reads and extends. A Ledger is a mutable append-order list; callers
// must serialize access (run closing once, fully, before reading
// reports).
package ledger

import (
	"time"

	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// Ledger is an ordered sequence of journal entries.
type Ledger struct {
	entries []*model.JournalEntry
}

// New creates a ledger over the given entries. The slice is taken over
// by the ledger.
func New(entries []*model.JournalEntry) *Ledger {
	return &Ledger{entries: entries}
}

// Entries returns the entries in append order.
func (l *Ledger) Entries() []*model.JournalEntry {
	return l.entries
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Append adds entries to the end of the ledger.
func (l *Ledger) Append(entries ...*model.JournalEntry) {
	l.entries = append(l.entries, entries...)
}

// OpeningDate returns the minimum date over all entries. Entries with no
// date are ignored. ok is false when no entry carries a date.
func (l *Ledger) OpeningDate() (time.Time, bool) {
	var min time.Time
	for _, e := range l.entries {
		if e.Date.IsZero() {
			continue
		}
		if min.IsZero() || e.Date.Before(min) {
			min = e.Date
		}
	}
	return min, !min.IsZero()
}

// FirstDate returns the date of the first entry in append order.
func (l *Ledger) FirstDate() (time.Time, bool) {
	for _, e := range l.entries {
		if !e.Date.IsZero() {
			return e.Date, true
		}
	}
	return time.Time{}, false
}

// DebitTotal sums all debit postings against the title.
func (l *Ledger) DebitTotal(t model.AccountTitle) int64 {
	var total int64
	for _, e := range l.entries {
		for _, line := range e.Debits {
			if line.Title.Equal(t) && line.Amount != model.AmountUnset {
				total += line.Amount
			}
		}
	}
	return total
}

// CreditTotal sums all credit postings against the title.
func (l *Ledger) CreditTotal(t model.AccountTitle) int64 {
	var total int64
	for _, e := range l.entries {
		for _, line := range e.Credits {
			if line.Title.Equal(t) && line.Amount != model.AmountUnset {
				total += line.Amount
			}
		}
	}
	return total
}

// NetBalance nets postings against the title on its normal side: debits
// minus credits for debit-normal titles, credits minus debits otherwise.
func (l *Ledger) NetBalance(t model.AccountTitle) int64 {
	if t.Type.NormalSide() == model.Debit {
		return l.DebitTotal(t) - l.CreditTotal(t)
	}
	return l.CreditTotal(t) - l.DebitTotal(t)
}

// Uses reports whether any entry posts against the title.
func (l *Ledger) Uses(t model.AccountTitle) bool {
	for _, e := range l.entries {
		if e.Touches(t) {
			return true
		}
	}
	return false
}

// UsedTitles returns the titles of the given types actually used in the
// ledger, in order of first appearance. Within an entry, credit lines
// are scanned before debit lines. Closing accounts are excluded.
func (l *Ledger) UsedTitles(types ...model.AccountType) []model.AccountTitle {
	wanted := make(map[model.AccountType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var titles []model.AccountTitle
	seen := make(map[model.TitleKey]bool)
	collect := func(t model.AccountTitle) {
		if t.Closing || !wanted[t.Type] || seen[t.Key()] {
			return
		}
		seen[t.Key()] = true
		titles = append(titles, t)
	}
	for _, e := range l.entries {
		for _, line := range e.Credits {
			collect(line.Title)
		}
		for _, line := range e.Debits {
			collect(line.Title)
		}
	}
	return titles
}

// EntriesWith returns the entries that post against the title, in append
// order.
func (l *Ledger) EntriesWith(t model.AccountTitle) []*model.JournalEntry {
	var result []*model.JournalEntry
	for _, e := range l.entries {
		if e.Touches(t) {
			result = append(result, e)
		}
	}
	return result
}
