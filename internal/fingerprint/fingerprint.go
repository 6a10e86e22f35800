// Package fingerprint computes the dedup identity of a transaction.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// delimiter separates fields before hashing so adjacent fields cannot
// collide by concatenation.
const delimiter = "|"

// Compute returns the sha256 hex digest over the five content fields in
// fixed order. Identical fields always yield an identical digest; any
// field difference changes it.
func Compute(date, description, debit, credit string, bank models.BankType) string {
	joined := strings.Join([]string{date, description, debit, credit, string(bank)}, delimiter)
	sum := sha256.Sum256([]byte(joined))
	return hex.EncodeToString(sum[:])
}

// Tag returns a copy of txn with its Fingerprint field filled in.
func Tag(txn models.Transaction) models.Transaction {
	txn.Fingerprint = Compute(txn.Date, txn.Description, txn.Debit, txn.Credit, txn.Bank)
	return txn
}
