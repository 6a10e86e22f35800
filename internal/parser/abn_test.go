package parser

import (
	"testing"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

func TestABNIsHeader(t *testing.T) {
	p := &ABNParser{}

	tests := []struct {
		name     string
		row      []string
		expected bool
	}{
		{"header row", []string{"", "Date", "Description", "", "Debit", "Credit"}, true},
		{"header row with padding", []string{" ", " Date ", " Description ", "", "Debit", "Credit", ""}, true},
		{"too few cells", []string{"Date", "Description", "Debit", "Credit"}, false},
		{"wrong labels", []string{"", "Datum", "Omschrijving", "", "Af", "Bij"}, false},
		{"transaction row", []string{"", "01-01-2023", "SUPERMARKET", "", "45.67", ""}, false},
		{"empty row", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsHeader(tt.row); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestABNParseRow(t *testing.T) {
	p := &ABNParser{}

	tests := []struct {
		name   string
		row    []string
		ok     bool
		date   string
		debit  string
		credit string
	}{
		{
			name:  "debit row",
			row:   []string{"", "01-01-2023", "SUPERMARKET GROCERY", "", "45.67", ""},
			ok:    true,
			date:  "01-01-2023",
			debit: "45.67", credit: "0",
		},
		{
			name:  "credit row",
			row:   []string{"", "05-01-2023", "SALARY PAYMENT", "", "", "2000.00"},
			ok:    true,
			date:  "05-01-2023",
			debit: "0", credit: "2000.00",
		},
		{
			name:  "european amount normalized",
			row:   []string{"", "10-01-2023", "RENT", "", "1.250,00", ""},
			ok:    true,
			date:  "10-01-2023",
			debit: "1250.00", credit: "0",
		},
		{
			name:  "short row missing amount cells",
			row:   []string{"", "12-01-2023", "MYSTERY"},
			ok:    true,
			date:  "12-01-2023",
			debit: "0", credit: "0",
		},
		{name: "blank date cell", row: []string{"", "", "carried over", "", "1.00", ""}, ok: false},
		{name: "repeated header", row: []string{"", "Date", "Description", "", "Debit", "Credit"}, ok: false},
		{name: "summary count row", row: []string{"", "Number of debit", "12", "", "", ""}, ok: false},
		{name: "summary total row", row: []string{"", "Total amount debited", "", "", "512.45", ""}, ok: false},
		{name: "non-date cell", row: []string{"", "subtotal", "x", "", "1.00", ""}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, ok := p.ParseRow(tt.row)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if txn.Date != tt.date {
				t.Errorf("date: got %q, want %q", txn.Date, tt.date)
			}
			if txn.Debit != tt.debit {
				t.Errorf("debit: got %q, want %q", txn.Debit, tt.debit)
			}
			if txn.Credit != tt.credit {
				t.Errorf("credit: got %q, want %q", txn.Credit, tt.credit)
			}
			if txn.Bank != models.BankABN {
				t.Errorf("bank: got %q, want %q", txn.Bank, models.BankABN)
			}
		})
	}
}
