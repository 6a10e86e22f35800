package parser

import (
	"strings"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// TableRecognizer extracts transactions from table rows once its
// header row has been seen.
type TableRecognizer interface {
	BankName() string
	IsHeader(row []string) bool
	ParseRow(row []string) (models.Transaction, bool)
}

// TextRecognizer extracts transactions from a page of raw text.
type TextRecognizer interface {
	BankName() string
	ParseText(text string) []models.Transaction
}

// Supporting another bank means adding one recognizer and binding it
// here; the dispatch below stays untouched.
var (
	tableRecognizer TableRecognizer = &ABNParser{}
	textRecognizer  TextRecognizer  = &INGParser{}
)

// ScanState carries recognizer progress across the tables and pages of
// a single document. Use a fresh one per document so multi-document
// runs stay isolated.
type ScanState struct {
	headerFound bool
	bank        models.BankType
}

func NewScanState() *ScanState {
	return &ScanState{}
}

// Bank returns the layout recognized so far, or "" before any header.
func (s *ScanState) Bank() models.BankType {
	return s.bank
}

// ExtractPage pulls transactions from one page. Dispatch is by
// capability, never by content: a page offering tables goes through
// the tabular recognizer, a page offering only text goes through the
// text-line recognizer, and a page offering neither contributes zero
// rows. Rows seen before any header row are not transactions.
func ExtractPage(page models.Page, state *ScanState) []models.Transaction {
	if page.HasTables() {
		return extractTables(page.Tables, state)
	}
	if strings.TrimSpace(page.Text) != "" {
		return textRecognizer.ParseText(page.Text)
	}
	return nil
}

func extractTables(tables [][][]string, state *ScanState) []models.Transaction {
	var txns []models.Transaction
	for _, table := range tables {
		for _, row := range table {
			if !state.headerFound {
				if tableRecognizer.IsHeader(row) {
					state.headerFound = true
					state.bank = models.BankABN
				}
				continue
			}
			if txn, ok := tableRecognizer.ParseRow(row); ok {
				txns = append(txns, txn)
			}
		}
	}
	return txns
}
