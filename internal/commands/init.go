package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/config"
)

const sampleJournal = `# One entry per item. Amounts are whole currency minor units.
#
# - date: 2023-01-04
#   description: sale
#   debit: [{account: Cash, amount: 1000}]
#   credit: [{account: Sales, amount: 1000}]
`

func newInitCommand() *cobra.Command {
	var name string
	var entityType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new set of books",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir, name, entityType)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", string(chart.SoleProprietorship),
		"sole_proprietorship or corporation")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, entityType string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfg := config.Default(name, chart.Entity(entityType))
	if _, err := cfg.Entity(); err != nil {
		return err
	}
	if err := config.Save(filepath.Join(dir, "bluebooks.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	journalPath := filepath.Join(dir, "journal.yaml")
	if _, err := os.Stat(journalPath); os.IsNotExist(err) {
		if err := os.WriteFile(journalPath, []byte(sampleJournal), 0o644); err != nil {
			return fmt.Errorf("writing journal: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized books for %s at %s\n", name, dir)
	return nil
}
