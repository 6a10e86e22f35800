package commands

import (
	"github.com/spf13/cobra"

	"github.com/insightdelivered/statement-ledger/internal/categorizer"
	"github.com/insightdelivered/statement-ledger/internal/config"
)

func newCategorizeCommand(cfgFile *string) *cobra.Command {
	var (
		inPath  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Assign categories to ledger rows and write a categorized copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			if inPath == "" {
				inPath = cfg.Ledger.Path
			}

			cat, err := categorizer.Load(cfg.Categories.Path, newLogger())
			if err != nil {
				return err
			}
			return cat.Run(inPath, outPath)
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "ledger CSV to read (defaults to configured ledger)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "categorized_transactions.csv", "output CSV path")
	return cmd
}
