package model

// Side is one of the two sides of a double-entry posting.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// AccountType classifies account titles.
type AccountType string

const (
	TypeAsset     AccountType = "asset"
	TypeLiability AccountType = "liability"
	TypeEquity    AccountType = "equity"
	TypeRevenue   AccountType = "revenue"
	TypeExpense   AccountType = "expense"
)

// NormalSide returns the side on which accounts of this type carry a
// positive balance: debit for assets and expenses, credit for
// liabilities, equity and revenue. Every increase/decrease computation
// in the engine goes through this binding.
func (t AccountType) NormalSide() Side {
	switch t {
	case TypeAsset, TypeExpense:
		return Debit
	case TypeLiability, TypeEquity, TypeRevenue:
		return Credit
	}
	return ""
}

// AccountTitle identifies an account by type and display name.
// Two titles are the same account when both fields match.
type AccountTitle struct {
	Type AccountType
	Name string
	// Closing marks the built-in settlement accounts. Entries that touch
	// a closing account are closing entries.
	Closing bool
}

// TitleKey is the identity of an AccountTitle, usable as a map key.
type TitleKey struct {
	Type AccountType
	Name string
}

// Key returns the identity of the title.
func (t AccountTitle) Key() TitleKey {
	return TitleKey{Type: t.Type, Name: t.Name}
}

// Equal reports whether two titles name the same account. The closing
// flag is not part of identity.
func (t AccountTitle) Equal(o AccountTitle) bool {
	return t.Type == o.Type && t.Name == o.Name
}

func (t AccountTitle) String() string {
	if t.Type == "" {
		return t.Name
	}
	return t.Name + " (" + string(t.Type) + ")"
}

// Built-in settlement accounts. Constructed once and referenced by value
// comparison everywhere; they never come from configuration.
var (
	// IncomeSummary collects all revenue and expense balances before
	// their net is moved to equity.
	IncomeSummary = AccountTitle{Type: TypeRevenue, Name: "Income Summary", Closing: true}

	// Balance collects asset, liability and equity balances to verify
	// the books balance at period end.
	Balance = AccountTitle{Type: TypeAsset, Name: "Balance", Closing: true}

	// RetainedEarnings receives the period's net income for corporations.
	RetainedEarnings = AccountTitle{Type: TypeEquity, Name: "Retained Earnings", Closing: true}

	// PretaxIncome receives the period's net income for sole proprietors.
	PretaxIncome = AccountTitle{Type: TypeEquity, Name: "Pretax Income", Closing: true}

	// Sundries stands in for "various counterparties" when a statement
	// needs to name one counter-account but several exist. It has no type.
	Sundries = AccountTitle{Name: "Sundries"}
)

// BuiltinTitles returns the four built-in settlement accounts.
func BuiltinTitles() []AccountTitle {
	return []AccountTitle{IncomeSummary, Balance, RetainedEarnings, PretaxIncome}
}
