package commands

import (
	"github.com/spf13/cobra"
)

func newReportCommand(configPath *string) *cobra.Command {
	var monthly bool

	cmd := &cobra.Command{
		Use:   "report <journal.yaml>",
		Short: "Render the statements from an already closed journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*configPath)
			if err != nil {
				return err
			}
			l, err := p.loadJournal(args[0])
			if err != nil {
				return err
			}
			return renderStatements(cmd, p, l, monthly)
		},
	}

	cmd.Flags().BoolVar(&monthly, "monthly", false, "include the monthly sales and purchases table")

	return cmd
}
