package model

import (
	"fmt"
	"time"
)

// AmountUnset marks a line whose amount has not been entered yet.
// Loaders may stage it while an entry is being edited; the settlement
// engine never operates on unset amounts.
const AmountUnset int64 = -1

// Line is one posting: an account title and a whole-unit amount. Which
// side it sits on is determined by the entry list that holds it.
type Line struct {
	Title  AccountTitle
	Amount int64
	// PageRef is the source-ledger page reference. Bookkeeping only; the
	// settlement algorithms never read it.
	PageRef int
}

// JournalEntry is a dated double-entry posting with debit and credit
// lines. Entries are created by a loader or synthesized by the
// settlement engine, appended to the ledger in order, and never mutated
// afterwards except for page references.
type JournalEntry struct {
	Date        time.Time
	Description string
	Debits      []Line
	Credits     []Line
}

// NewEntry creates a journal entry.
func NewEntry(date time.Time, description string, debits, credits []Line) *JournalEntry {
	return &JournalEntry{Date: date, Description: description, Debits: debits, Credits: credits}
}

// DebitTotal sums the debit lines. Unset amounts count as zero.
func (e *JournalEntry) DebitTotal() int64 {
	var total int64
	for _, l := range e.Debits {
		if l.Amount != AmountUnset {
			total += l.Amount
		}
	}
	return total
}

// CreditTotal sums the credit lines. Unset amounts count as zero.
func (e *JournalEntry) CreditTotal() int64 {
	var total int64
	for _, l := range e.Credits {
		if l.Amount != AmountUnset {
			total += l.Amount
		}
	}
	return total
}

// Touches reports whether the entry posts against the given title on
// either side.
func (e *JournalEntry) Touches(t AccountTitle) bool {
	for _, l := range e.Debits {
		if l.Title.Equal(t) {
			return true
		}
	}
	for _, l := range e.Credits {
		if l.Title.Equal(t) {
			return true
		}
	}
	return false
}

// IsClosing reports whether the entry touches any closing account.
func (e *JournalEntry) IsClosing() bool {
	for _, l := range e.Debits {
		if l.Title.Closing {
			return true
		}
	}
	for _, l := range e.Credits {
		if l.Title.Closing {
			return true
		}
	}
	return false
}

// IsIncomeSummary reports whether the entry touches the Income Summary
// account.
func (e *JournalEntry) IsIncomeSummary() bool {
	return e.Touches(IncomeSummary)
}

// IsBalance reports whether the entry touches the Balance account.
func (e *JournalEntry) IsBalance() bool {
	return e.Touches(Balance)
}

// OpeningRule is what it takes to recognize an opening entry. For sole
// proprietors the marker is the capital account; for corporations a
// recognized opening caption.
type OpeningRule struct {
	SoloProprietor bool
	// OpeningDate is the earliest date in the ledger.
	OpeningDate time.Time
	// CapitalName is the proprietor's capital account display name.
	CapitalName string
	// Captions are descriptions that mark a corporate opening entry.
	Captions []string
}

// IsOpening reports whether the entry is an opening entry under the
// given rule. Closing entries are never opening entries: the capital
// account also shows up in balance-transfer entries, and those must not
// be mistaken for the opening posting.
func (e *JournalEntry) IsOpening(rule OpeningRule) bool {
	if e.IsClosing() {
		return false
	}
	if e.Date.IsZero() || !e.Date.Equal(rule.OpeningDate) {
		return false
	}
	if rule.SoloProprietor {
		for _, l := range e.Debits {
			if l.Title.Name == rule.CapitalName {
				return true
			}
		}
		for _, l := range e.Credits {
			if l.Title.Name == rule.CapitalName {
				return true
			}
		}
		return false
	}
	for _, caption := range rule.Captions {
		if e.Description == caption {
			return true
		}
	}
	return false
}

// EntryErrorCode identifies which invariant a journal entry violates.
type EntryErrorCode int

const (
	ErrNoDate EntryErrorCode = iota + 1
	ErrNoDescription
	ErrNoLines
	ErrNoDebit
	ErrNoCredit
	ErrDebitAmountUnset
	ErrCreditAmountUnset
	ErrUnbalanced
)

// EntryError describes a single invariant violation on a journal entry.
type EntryError struct {
	Code  EntryErrorCode
	Title AccountTitle // set for the amount-unset codes
}

func (e *EntryError) Error() string {
	switch e.Code {
	case ErrNoDate:
		return "entry has no date"
	case ErrNoDescription:
		return "entry has no description"
	case ErrNoLines:
		return "entry has no lines"
	case ErrNoDebit:
		return "entry has no debit lines"
	case ErrNoCredit:
		return "entry has no credit lines"
	case ErrDebitAmountUnset:
		return fmt.Sprintf("debit amount not entered for %s", e.Title)
	case ErrCreditAmountUnset:
		return fmt.Sprintf("credit amount not entered for %s", e.Title)
	case ErrUnbalanced:
		return "debit total does not equal credit total"
	}
	return "invalid entry"
}

// Validate checks the posted-entry invariants: a date, a description,
// non-empty debit and credit lines, no staged amounts, and equal debit
// and credit totals. Entries still being edited may fail these checks;
// engine-synthesized entries satisfy them by construction.
func (e *JournalEntry) Validate() error {
	if e.Date.IsZero() {
		return &EntryError{Code: ErrNoDate}
	}
	if e.Description == "" {
		return &EntryError{Code: ErrNoDescription}
	}
	if len(e.Debits) == 0 && len(e.Credits) == 0 {
		return &EntryError{Code: ErrNoLines}
	}
	var debitTotal int64
	for _, l := range e.Debits {
		if l.Amount < 0 {
			return &EntryError{Code: ErrDebitAmountUnset, Title: l.Title}
		}
		debitTotal += l.Amount
	}
	var creditTotal int64
	for _, l := range e.Credits {
		if l.Amount < 0 {
			return &EntryError{Code: ErrCreditAmountUnset, Title: l.Title}
		}
		creditTotal += l.Amount
	}
	if len(e.Debits) == 0 {
		return &EntryError{Code: ErrNoDebit}
	}
	if len(e.Credits) == 0 {
		return &EntryError{Code: ErrNoCredit}
	}
	if debitTotal != creditTotal {
		return &EntryError{Code: ErrUnbalanced}
	}
	return nil
}

// Clone returns a deep copy of the entry.
func (e *JournalEntry) Clone() *JournalEntry {
	debits := make([]Line, len(e.Debits))
	copy(debits, e.Debits)
	credits := make([]Line, len(e.Credits))
	copy(credits, e.Credits)
	return &JournalEntry{Date: e.Date, Description: e.Description, Debits: debits, Credits: credits}
}
