// Package pipeline runs the end-to-end extraction: documents in,
// deduplicated ledger rows out.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/statement-ledger/internal/extractor"
	"github.com/insightdelivered/statement-ledger/internal/fingerprint"
	"github.com/insightdelivered/statement-ledger/internal/ledger"
	"github.com/insightdelivered/statement-ledger/internal/models"
	"github.com/insightdelivered/statement-ledger/internal/parser"
)

// Report summarizes one run. Totals cover only the rows actually
// appended this run, summed best-effort (unparseable amounts count as
// zero).
type Report struct {
	Documents   int
	Extracted   int
	Appended    int
	Skipped     int
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Run parses every document, fingerprints the extracted transactions
// and merges them into the ledger in a single pass at the end. A
// document that cannot be read aborts the run before anything is
// written. Each document gets fresh recognizer state.
func Run(logger *slog.Logger, docPaths []string, ledgerPath string) (Report, error) {
	var all []models.Transaction

	for _, path := range docPaths {
		pages, err := extractor.Open(path)
		if err != nil {
			return Report{}, fmt.Errorf("reading %s: %w", path, err)
		}

		state := parser.NewScanState()
		count := 0
		for _, page := range pages {
			for _, txn := range parser.ExtractPage(page, state) {
				all = append(all, fingerprint.Tag(txn))
				count++
			}
		}
		logger.Info("parsed document",
			"path", path, "pages", len(pages), "transactions", count)
	}

	led := &ledger.Ledger{Path: ledgerPath}
	appended, err := led.Merge(all)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Documents:   len(docPaths),
		Extracted:   len(all),
		Appended:    len(appended),
		Skipped:     len(all) - len(appended),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, txn := range appended {
		if d, err := decimal.NewFromString(txn.Debit); err == nil {
			report.TotalDebit = report.TotalDebit.Add(d)
		}
		if c, err := decimal.NewFromString(txn.Credit); err == nil {
			report.TotalCredit = report.TotalCredit.Add(c)
		}
	}

	logger.Info("merged ledger",
		"path", ledgerPath,
		"extracted", report.Extracted,
		"appended", report.Appended,
		"skipped", report.Skipped)
	return report, nil
}
