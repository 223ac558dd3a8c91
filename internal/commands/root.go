package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bluebooks-dev/bluebooks/internal/buildinfo"
	"github.com/bluebooks-dev/bluebooks/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	env, err := config.ParseEnv()
	if err != nil {
		env = config.Env{ConfigPath: "bluebooks.yaml"}
	}

	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "bluebooks",
		Short:   "Double-entry settlement and financial statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", env.ConfigPath, "project configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", env.Verbose, "verbose logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCloseCommand(&configPath, &verbose))
	rootCmd.AddCommand(newReportCommand(&configPath))

	return rootCmd
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
