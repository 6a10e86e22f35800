package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// INGParser handles ING statements, which render as running text
// rather than tables.
//
// Layout:
//   Date Name / Description / Notification Type Amount
//   01/02/2023 Albert Heijn groceries - 12,34
//
// A transaction starts with a date and usually ends with a signed
// amount; lines in between extend the previous description. The scan
// carries one open transaction at a time and flushes it when the next
// one starts or the page ends.
type INGParser struct{}

// Column-header phrase as it appears in ING exports, matched
// case-insensitively with parentheses stripped.
const ingHeaderPhrase = "date name / description / notification type amount"

var (
	// Transaction lines start with D/MM/YYYY or DD/MM/YYYY.
	ingTxnStartPattern = regexp.MustCompile(`^(\d{1,2}/\d{2}/\d{4})\s+(.*)$`)
	// Trailing signed amount like "- 12,34" or "+1500,00".
	ingAmountPattern = regexp.MustCompile(`([+-])\s*(\d+(?:[.,]\d+)?)\s*$`)
)

// ingBoilerplate marks lines that never belong to a transaction
// description, matched case-insensitively as substrings.
var ingBoilerplate = []string{
	"ing bank n.v.",
	"trade register",
	"page ",
	"previous balance",
	"new balance",
	"balance on",
	"statement",
	"account holder",
	"statement period",
	"value date",
	"iban",
	"bic",
	"date/time",
	"amsterdam",
}

func (p *INGParser) BankName() string {
	return "ING"
}

// ParseText scans one page of raw ING text and returns its
// transactions. Each page is parsed independently: a transaction whose
// description continues on the next page is cut off at the page break.
func (p *INGParser) ParseText(text string) []models.Transaction {
	var txns []models.Transaction
	var current *models.Transaction
	headerFound := false

	flush := func() {
		if current == nil {
			return
		}
		current.Description = NormalizeDescription(current.Description)
		txns = append(txns, *current)
		current = nil
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if !headerFound {
			if isINGHeaderLine(line) {
				headerFound = true
			}
			continue
		}

		if m := ingTxnStartPattern.FindStringSubmatch(line); m != nil {
			flush()
			txn := models.Transaction{
				Date:   m[1],
				Debit:  "0",
				Credit: "0",
				Bank:   models.BankING,
			}
			rest := m[2]
			if am := ingAmountPattern.FindStringSubmatch(rest); am != nil {
				amount := NormalizeAmount(am[2])
				if am[1] == "-" {
					txn.Debit = amount
				} else {
					txn.Credit = amount
				}
				rest = strings.TrimSpace(rest[:len(rest)-len(am[0])])
			}
			txn.Description = rest
			current = &txn
			continue
		}

		if current != nil && !isINGBoilerplate(line) {
			current.Description += " " + line
		}
	}

	flush()
	return txns
}

func isINGHeaderLine(line string) bool {
	cleaned := strings.NewReplacer("(", "", ")", "").Replace(line)
	return strings.Contains(strings.ToLower(cleaned), ingHeaderPhrase)
}

func isINGBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range ingBoilerplate {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
