// Package config reads and writes the bluebooks.yaml project file: the
// business identity, the chart of accounts, the special-account
// bindings the settlement steps use, and the statement layouts.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/model"
	"github.com/bluebooks-dev/bluebooks/internal/report"
)

// Config represents the top-level bluebooks.yaml configuration.
type Config struct {
	Business        BusinessConfig   `yaml:"business"`
	Behavior        BehaviorConfig   `yaml:"behavior"`
	Accounts        AccountsConfig   `yaml:"accounts"`
	SpecialAccounts SpecialAccounts  `yaml:"special_accounts"`
	ProfitAndLoss   StatementConfig  `yaml:"profit_and_loss"`
	BalanceSheet    StatementConfig  `yaml:"balance_sheet"`
	Divisions       []DivisionConfig `yaml:"proportional_divisions,omitempty"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"` // sole_proprietorship or corporation
	Currency   string `yaml:"currency"`
}

// BehaviorConfig tunes the non-fatal edges of settlement.
type BehaviorConfig struct {
	MissingAccountFatal   bool `yaml:"missing_account_fatal"`
	SuppressZeroNetIncome bool `yaml:"suppress_zero_net_income"`
}

// AccountsConfig declares the chart of accounts, one ordered name list
// per type. Empty lists fall back to the built-in default chart.
type AccountsConfig struct {
	Assets      []string `yaml:"assets,omitempty"`
	Liabilities []string `yaml:"liabilities,omitempty"`
	Equity      []string `yaml:"equity,omitempty"`
	Revenue     []string `yaml:"revenue,omitempty"`
	Expenses    []string `yaml:"expenses,omitempty"`
}

func (a AccountsConfig) empty() bool {
	return len(a.Assets) == 0 && len(a.Liabilities) == 0 && len(a.Equity) == 0 &&
		len(a.Revenue) == 0 && len(a.Expenses) == 0
}

// Titles returns the declared chart in declaration order.
func (a AccountsConfig) Titles() []model.AccountTitle {
	var titles []model.AccountTitle
	add := func(typ model.AccountType, names []string) {
		for _, name := range names {
			titles = append(titles, model.AccountTitle{Type: typ, Name: name})
		}
	}
	add(model.TypeAsset, a.Assets)
	add(model.TypeLiability, a.Liabilities)
	add(model.TypeEquity, a.Equity)
	add(model.TypeRevenue, a.Revenue)
	add(model.TypeExpense, a.Expenses)
	return titles
}

// SpecialAccounts binds the settlement and carry-forward steps to
// account names in the chart.
type SpecialAccounts struct {
	Capital             string   `yaml:"capital"`
	OwnersDrawing       string   `yaml:"owners_drawing"`
	OwnersContribution  string   `yaml:"owners_contribution"`
	SuspenseTaxPaid     string   `yaml:"suspense_tax_paid"`
	SuspenseTaxReceived string   `yaml:"suspense_tax_received"`
	TaxReceivable       string   `yaml:"tax_receivable"`
	TaxPayable          string   `yaml:"tax_payable"`
	EndingInventory     string   `yaml:"ending_inventory"`
	BeginningInventory  string   `yaml:"beginning_inventory"`
	OpeningCaptions     []string `yaml:"opening_captions,omitempty"`
}

// DivisionConfig marks one account for business/private proportional
// division at closing.
type DivisionConfig struct {
	Account       string  `yaml:"account"`
	BusinessRatio float64 `yaml:"business_ratio"`
}

// StatementConfig lays out one statement and its display rules.
type StatementConfig struct {
	Layout       []LayoutItem `yaml:"layout"`
	SignReversed []string     `yaml:"sign_reversed,omitempty"`
	AlwaysShown  []string     `yaml:"always_shown,omitempty"`
	HiddenIfZero []string     `yaml:"hidden_if_zero,omitempty"`
}

// LayoutNodes converts the layout to the report tree form.
func (s StatementConfig) LayoutNodes() []*report.LayoutNode {
	nodes := make([]*report.LayoutNode, 0, len(s.Layout))
	for _, item := range s.Layout {
		nodes = append(nodes, item.node())
	}
	return nodes
}

// Rules returns the statement's display rules.
func (s StatementConfig) Rules(currency string) report.DisplayRules {
	return report.DisplayRules{
		SignReversed: s.SignReversed,
		AlwaysShown:  s.AlwaysShown,
		HiddenIfZero: s.HiddenIfZero,
		Currency:     currency,
	}
}

// Entity resolves the configured entity type.
func (c *Config) Entity() (chart.Entity, error) {
	switch c.Business.EntityType {
	case string(chart.SoleProprietorship):
		return chart.SoleProprietorship, nil
	case string(chart.Corporation):
		return chart.Corporation, nil
	}
	return "", fmt.Errorf("unknown entity type %q", c.Business.EntityType)
}

// Chart builds the chart of accounts: the declared one, or the default
// chart for the entity when no accounts are configured.
func (c *Config) Chart() (*chart.Chart, error) {
	entity, err := c.Entity()
	if err != nil {
		return nil, err
	}
	if c.Accounts.empty() {
		return chart.New(chart.Default(entity)), nil
	}
	return chart.New(c.Accounts.Titles()), nil
}

// Load reads a bluebooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new set of
// books.
func Default(businessName string, entity chart.Entity) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: string(entity),
			Currency:   "USD",
		},
		SpecialAccounts: SpecialAccounts{
			Capital:             "Proprietor's Capital",
			OwnersDrawing:       "Owner's Drawing",
			OwnersContribution:  "Owner's Contribution",
			SuspenseTaxPaid:     "Suspense Tax Paid",
			SuspenseTaxReceived: "Suspense Tax Received",
			TaxReceivable:       "Tax Receivable",
			TaxPayable:          "Tax Payable",
			EndingInventory:     "Ending Inventory",
			BeginningInventory:  "Beginning Inventory",
			OpeningCaptions: []string{
				"Balance brought forward",
				"Opening balance",
				"Beginning balance",
				"Capital stock",
			},
		},
		ProfitAndLoss: defaultProfitAndLossLayout(),
		BalanceSheet:  defaultBalanceSheetLayout(entity),
	}
}

func defaultProfitAndLossLayout() StatementConfig {
	return StatementConfig{
		Layout: []LayoutItem{
			{Name: "Revenue", Accounts: []string{"Sales", "Interest Income", "Miscellaneous Income"}},
			{Name: "Cost of goods sold", Children: []LayoutItem{
				{Name: "Beginning inventory", Accounts: []string{"Beginning Inventory"}},
				{Name: "Purchases", Accounts: []string{"Purchases"}},
				{Name: "Ending inventory", Accounts: []string{"Ending Inventory"}},
			}},
			{Name: "Operating expenses", Children: []LayoutItem{
				{Name: "Advertising", Accounts: []string{"Advertising"}},
				{Name: "Supplies", Accounts: []string{"Supplies"}},
				{Name: "Rent", Accounts: []string{"Rent"}},
				{Name: "Utilities", Accounts: []string{"Utilities"}},
				{Name: "Travel", Accounts: []string{"Travel"}},
				{Name: "Communication", Accounts: []string{"Communication"}},
				{Name: "Depreciation", Accounts: []string{"Depreciation"}},
				{Name: "Interest expense", Accounts: []string{"Interest Expense"}},
				{Name: "Miscellaneous loss", Accounts: []string{"Miscellaneous Loss"}},
			}},
		},
		HiddenIfZero: []string{"Ending inventory", "Beginning inventory"},
	}
}

func defaultBalanceSheetLayout(entity chart.Entity) StatementConfig {
	assets := LayoutItem{Name: "Assets", Children: []LayoutItem{
		{Name: "Cash", Accounts: []string{"Cash"}},
		{Name: "Deposits", Accounts: []string{"Checking Deposits", "Savings Deposits"}},
		{Name: "Accounts receivable", Accounts: []string{"Accounts Receivable"}},
		{Name: "Products", Accounts: []string{"Products"}},
		{Name: "Fixed assets", Accounts: []string{"Buildings", "Vehicles", "Equipment", "Land"}},
	}}
	liabilities := LayoutItem{Name: "Liabilities", Children: []LayoutItem{
		{Name: "Accounts payable", Accounts: []string{"Accounts Payable"}},
		{Name: "Loans", Accounts: []string{"Short-term Loans", "Long-term Loans"}},
		{Name: "Tax payable", Accounts: []string{"Tax Payable"}},
	}}

	equity := LayoutItem{Name: "Equity", Children: []LayoutItem{
		{Name: "Capital stock", Accounts: []string{"Capital Stock"}},
		{Name: "Legal reserve", Accounts: []string{"Legal Reserve"}},
		{Name: "Retained earnings", Accounts: []string{"Retained Earnings"}},
	}}
	cfg := StatementConfig{
		SignReversed: []string{"Owner's drawing"},
	}
	if entity.Solo() {
		assets.Children = append(assets.Children,
			LayoutItem{Name: "Owner's drawing", Accounts: []string{"Owner's Drawing"}})
		liabilities.Children = append(liabilities.Children,
			LayoutItem{Name: "Owner's contribution", Accounts: []string{"Owner's Contribution"}})
		equity = LayoutItem{Name: "Equity", Children: []LayoutItem{
			{Name: "Capital", Accounts: []string{"Proprietor's Capital"}},
			{Name: "Pretax income", Accounts: []string{"Pretax Income"}},
		}}
	}
	cfg.Layout = []LayoutItem{assets, liabilities, equity}
	return cfg
}
