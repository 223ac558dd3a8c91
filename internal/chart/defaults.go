package chart

import "github.com/bluebooks-dev/bluebooks/internal/model"

// Default returns the default chart of accounts for an entity type.
func Default(entity Entity) []model.AccountTitle {
	if entity.Solo() {
		return soleProprietorshipChart()
	}
	return corporationChart()
}

func commonTitles() []model.AccountTitle {
	return []model.AccountTitle{
		// Assets
		{Type: model.TypeAsset, Name: "Cash"},
		{Type: model.TypeAsset, Name: "Checking Deposits"},
		{Type: model.TypeAsset, Name: "Savings Deposits"},
		{Type: model.TypeAsset, Name: "Accounts Receivable"},
		{Type: model.TypeAsset, Name: "Products"},
		{Type: model.TypeAsset, Name: "Suspense Tax Paid"},
		{Type: model.TypeAsset, Name: "Tax Receivable"},
		{Type: model.TypeAsset, Name: "Buildings"},
		{Type: model.TypeAsset, Name: "Vehicles"},
		{Type: model.TypeAsset, Name: "Equipment"},
		{Type: model.TypeAsset, Name: "Land"},

		// Liabilities
		{Type: model.TypeLiability, Name: "Accounts Payable"},
		{Type: model.TypeLiability, Name: "Short-term Loans"},
		{Type: model.TypeLiability, Name: "Accrued Expenses"},
		{Type: model.TypeLiability, Name: "Deposits Received"},
		{Type: model.TypeLiability, Name: "Suspense Tax Received"},
		{Type: model.TypeLiability, Name: "Tax Payable"},
		{Type: model.TypeLiability, Name: "Long-term Loans"},

		// Revenue
		{Type: model.TypeRevenue, Name: "Sales"},
		{Type: model.TypeRevenue, Name: "Interest Income"},
		{Type: model.TypeRevenue, Name: "Miscellaneous Income"},

		// Expenses
		{Type: model.TypeExpense, Name: "Purchases"},
		{Type: model.TypeExpense, Name: "Beginning Inventory"},
		{Type: model.TypeExpense, Name: "Ending Inventory"},
		{Type: model.TypeExpense, Name: "Advertising"},
		{Type: model.TypeExpense, Name: "Supplies"},
		{Type: model.TypeExpense, Name: "Rent"},
		{Type: model.TypeExpense, Name: "Utilities"},
		{Type: model.TypeExpense, Name: "Travel"},
		{Type: model.TypeExpense, Name: "Communication"},
		{Type: model.TypeExpense, Name: "Depreciation"},
		{Type: model.TypeExpense, Name: "Interest Expense"},
		{Type: model.TypeExpense, Name: "Miscellaneous Loss"},
	}
}

func soleProprietorshipChart() []model.AccountTitle {
	return append(commonTitles(),
		model.AccountTitle{Type: model.TypeAsset, Name: "Owner's Drawing"},
		model.AccountTitle{Type: model.TypeLiability, Name: "Owner's Contribution"},
		model.AccountTitle{Type: model.TypeEquity, Name: "Proprietor's Capital"},
	)
}

func corporationChart() []model.AccountTitle {
	return append(commonTitles(),
		model.AccountTitle{Type: model.TypeEquity, Name: "Capital Stock"},
		model.AccountTitle{Type: model.TypeEquity, Name: "Legal Reserve"},
		model.AccountTitle{Type: model.TypeEquity, Name: "Retained Earnings"},
	)
}
