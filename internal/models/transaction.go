package models

// Transaction represents a single extracted bank-statement record.
// All fields are textual: dates stay in whatever format the source
// layout uses (no cross-layout normalization), and amounts are
// normalized decimal strings with "0" in the unused slot.
type Transaction struct {
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Debit       string   `json:"debit"`
	Credit      string   `json:"credit"`
	Bank        BankType `json:"bank"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

// BankType identifies which statement layout produced a record.
type BankType string

const (
	BankABN BankType = "ABN"
	BankING BankType = "ING"
)

// Page is what a document reader yields for one statement page: zero
// or more tables (ordered rows of ordered cells, cells possibly empty)
// and a raw text rendering. Which capability is populated decides the
// extraction path.
type Page struct {
	Tables [][][]string
	Text   string
}

// HasTables reports whether the page offers at least one table with rows.
func (p Page) HasTables() bool {
	for _, t := range p.Tables {
		if len(t) > 0 {
			return true
		}
	}
	return false
}
