package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bluebooks-dev/bluebooks/internal/carry"
	"github.com/bluebooks-dev/bluebooks/internal/close"
	"github.com/bluebooks-dev/bluebooks/internal/entryio"
	"github.com/bluebooks-dev/bluebooks/internal/ledger"
	"github.com/bluebooks-dev/bluebooks/internal/report"
)

func newCloseCommand(configPath *string, verbose *bool) *cobra.Command {
	var output string
	var monthly bool

	cmd := &cobra.Command{
		Use:   "close <journal.yaml>",
		Short: "Post the closing entries and render the statements",
		Long: `Close reads the period's journal, derives the closing entries
(proportional division, tax settlement, income summary and balance
sweeps), renders the profit and loss statement and the balance sheet,
and optionally writes next period's opening journal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClose(cmd, *configPath, args[0], output, monthly, *verbose)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write next period's opening journal to this file")
	cmd.Flags().BoolVar(&monthly, "monthly", false, "include the monthly sales and purchases table")

	return cmd
}

func runClose(cmd *cobra.Command, configPath, journalPath, output string, monthly, verbose bool) error {
	log := newLogger(verbose)
	defer func() { _ = log.Sync() }()

	p, err := loadProject(configPath)
	if err != nil {
		return err
	}
	l, err := p.loadJournal(journalPath)
	if err != nil {
		return err
	}
	divisions, err := p.divisions()
	if err != nil {
		return err
	}

	engine := close.New(p.chart, p.entity, p.closeNames(), p.closeOptions(), log)
	if err := engine.AddClosingEntries(l, divisions); err != nil {
		return err
	}
	for _, note := range engine.Notes() {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %s\n", note)
	}

	if err := renderStatements(cmd, p, l, monthly); err != nil {
		return err
	}

	if output != "" {
		closing, err := close.ClosingDate(l, p.entity)
		if err != nil {
			return err
		}
		if err := writeOpeningJournal(p, l, closing, output, log); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nOpening journal written to %s\n", output)
	}
	return nil
}

func renderStatements(cmd *cobra.Command, p *project, l *ledger.Ledger, monthly bool) error {
	out := cmd.OutOrStdout()
	currency := p.cfg.Business.Currency

	pl, err := report.NewProfitAndLoss(l, p.chart, p.cfg.ProfitAndLoss.LayoutNodes())
	if err != nil {
		return err
	}
	if err := report.RenderProfitAndLoss(out, pl, p.cfg.ProfitAndLoss.Rules(currency)); err != nil {
		return err
	}
	fmt.Fprintln(out)

	rule, err := p.openingRule(l)
	if err != nil {
		return err
	}
	bs, err := report.NewBalanceSheet(l, p.chart, p.cfg.BalanceSheet.LayoutNodes(), rule)
	if err != nil {
		return err
	}
	if err := report.RenderBalanceSheet(out, bs, p.cfg.BalanceSheet.Rules(currency)); err != nil {
		return err
	}

	if monthly {
		sales, _ := p.chart.ByName("Sales")
		purchases, _ := p.chart.ByName("Purchases")
		totals := report.MonthlyTotals(l, rule, sales, purchases)
		fmt.Fprintln(out)
		if err := report.RenderMonthlyTotals(out, totals, report.DisplayRules{Currency: currency}); err != nil {
			return err
		}
	}
	return nil
}

func writeOpeningJournal(p *project, l *ledger.Ledger, closing time.Time, output string, log *zap.Logger) error {
	sa := p.cfg.SpecialAccounts
	names := carry.Names{
		Capital:            sa.Capital,
		OwnersDrawing:      sa.OwnersDrawing,
		OwnersContribution: sa.OwnersContribution,
		EndingInventory:    sa.EndingInventory,
		BeginningInventory: sa.BeginningInventory,
	}
	entries, err := carry.New(p.chart, p.entity, names, log).Generate(l, closing)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating opening journal: %w", err)
	}
	defer f.Close()
	if err := entryio.Encode(f, entries); err != nil {
		return err
	}
	return f.Close()
}

func decimalFromRatio(ratio float64) decimal.Decimal {
	return decimal.NewFromFloat(ratio)
}
