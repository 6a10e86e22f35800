package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/statement-ledger/internal/config"
	"github.com/insightdelivered/statement-ledger/internal/pipeline"
)

func newIngestCommand(cfgFile *string) *cobra.Command {
	var ledgerPath string

	cmd := &cobra.Command{
		Use:   "ingest <statement.pdf|statement.xlsx> [more documents...]",
		Short: "Parse statement documents and merge new transactions into the ledger",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			if ledgerPath == "" {
				ledgerPath = cfg.Ledger.Path
			}

			report, err := pipeline.Run(newLogger(), args, ledgerPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Appended %d of %d extracted transactions to %s (%d duplicates skipped)\n",
				report.Appended, report.Extracted, ledgerPath, report.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ledgerPath, "ledger", "l", "", "ledger CSV path (overrides config)")
	return cmd
}
