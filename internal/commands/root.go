// Package commands wires the CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "statement-ledger",
		Short:   "Extract bank-statement transactions into a deduplicated ledger",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(newIngestCommand(&cfgFile))
	rootCmd.AddCommand(newServeCommand(&cfgFile))
	rootCmd.AddCommand(newCategorizeCommand(&cfgFile))

	return rootCmd
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
