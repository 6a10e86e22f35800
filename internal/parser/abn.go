package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// ABNParser handles ABN AMRO statements, which render as tables.
//
// Layout (one table row per transaction):
//   [seq] | Date | Description | ... | Debit | Credit
//
// Date format: DD-MM-YYYY
// Example row: ["", "15-01-2024", "SUPERMARKET GROCERY", "", "45.67", ""]
type ABNParser struct{}

const (
	abnDateCol   = 1
	abnDescCol   = 2
	abnDebitCol  = 4
	abnCreditCol = 5
)

var abnDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)

// abnSummaryLabels appear in the date column of totals rows inside the
// transaction table.
var abnSummaryLabels = map[string]bool{
	"Date":                 true,
	"Number of debit":      true,
	"Total amount debited": true,
}

func (p *ABNParser) BankName() string {
	return "ABN AMRO"
}

// IsHeader reports whether row is the ABN column-header row.
func (p *ABNParser) IsHeader(row []string) bool {
	return len(row) > 5 &&
		cellAt(row, abnDateCol) == "Date" &&
		cellAt(row, abnDescCol) == "Description"
}

// ParseRow converts a table row into a transaction. Blank, summary and
// otherwise unrecognized rows return ok=false. A missing or empty
// amount cell yields "0" in that slot.
func (p *ABNParser) ParseRow(row []string) (models.Transaction, bool) {
	date := cellAt(row, abnDateCol)
	if date == "" || abnSummaryLabels[date] {
		return models.Transaction{}, false
	}
	if !abnDatePattern.MatchString(date) {
		return models.Transaction{}, false
	}

	txn := models.Transaction{
		Date:        date,
		Description: NormalizeDescription(cellAt(row, abnDescCol)),
		Debit:       "0",
		Credit:      "0",
		Bank:        models.BankABN,
	}
	if v := cellAt(row, abnDebitCol); v != "" {
		txn.Debit = NormalizeAmount(v)
	}
	if v := cellAt(row, abnCreditCol); v != "" {
		txn.Credit = NormalizeAmount(v)
	}
	return txn, true
}

// cellAt returns the trimmed cell at index i, or "" when the row is
// too short.
func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
