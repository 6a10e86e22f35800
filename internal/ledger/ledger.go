// Package ledger persists deduplicated transactions as an append-only
// CSV file keyed by fingerprint.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// Header is the ledger's CSV column header.
var Header = []string{"Date", "Description", "Debit", "Credit", "Bank", "Hash"}

const (
	dateCol        = 0
	descCol        = 1
	debitCol       = 2
	creditCol      = 3
	bankCol        = 4
	fingerprintCol = 5
)

// Ledger reads and appends one CSV ledger file. The merge is a plain
// read-then-append without locking: two concurrent runs against the
// same path can both pass the fingerprint check and double-append a
// row. Single-writer execution is assumed.
type Ledger struct {
	Path string
}

// Fingerprints returns the set of hashes already present in the
// ledger. A missing file yields an empty set. Rows written before
// hashing was introduced lack the column and contribute nothing, so
// they stay invisible to the dedup filter.
func (l *Ledger) Fingerprints() (map[string]struct{}, error) {
	seen := make(map[string]struct{})

	f, err := os.Open(l.Path)
	if errors.Is(err, os.ErrNotExist) {
		return seen, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) > fingerprintCol && rec[fingerprintCol] != "" {
			seen[rec[fingerprintCol]] = struct{}{}
		}
	}
	return seen, nil
}

// Merge appends, in input order, every transaction whose fingerprint
// is not yet in the ledger and returns the rows it appended. A missing
// or empty file gets the header first; existing content is never
// rewritten.
func (l *Ledger) Merge(txns []models.Transaction) ([]models.Transaction, error) {
	seen, err := l.Fingerprints()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening ledger for append: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat ledger: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(Header); err != nil {
			return nil, fmt.Errorf("writing ledger header: %w", err)
		}
	}

	var appended []models.Transaction
	for _, txn := range txns {
		if _, dup := seen[txn.Fingerprint]; dup {
			continue
		}
		seen[txn.Fingerprint] = struct{}{}
		row := []string{txn.Date, txn.Description, txn.Debit, txn.Credit, string(txn.Bank), txn.Fingerprint}
		if err := cw.Write(row); err != nil {
			return appended, fmt.Errorf("writing ledger row: %w", err)
		}
		appended = append(appended, txn)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return appended, fmt.Errorf("flushing ledger: %w", err)
	}
	return appended, nil
}

// ReadAll returns every transaction currently in the ledger, in file
// order. Short legacy rows are returned with whatever columns they
// have; a missing file yields no rows.
func (l *Ledger) ReadAll() ([]models.Transaction, error) {
	f, err := os.Open(l.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var txns []models.Transaction
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		txn := models.Transaction{
			Date:        colAt(rec, dateCol),
			Description: colAt(rec, descCol),
			Debit:       colAt(rec, debitCol),
			Credit:      colAt(rec, creditCol),
			Bank:        models.BankType(colAt(rec, bankCol)),
			Fingerprint: colAt(rec, fingerprintCol),
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func colAt(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}
