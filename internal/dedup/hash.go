// Package dedup derives the content hash that keeps each transaction unique
// within a case and applies it against the store's uniqueness constraint.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

// Key builds the canonical dedup key for a transaction. The key is a pure
// function of {source_account, recipient_account, recipient_name, amount,
// description}, each trimmed and case-folded, the amount in fixed two-decimal
// string form. The transaction date and originating document are deliberately
// excluded: reprocessing a statement window must not create duplicates just
// because the bank restates a value date.
func Key(t *entity.Transaction) string {
	return strings.Join([]string{
		fold(t.SourceAccount),
		fold(t.RecipientAccount),
		fold(t.RecipientName),
		t.Amount.StringFixed(2),
		fold(t.Description),
	}, "|")
}

// Hash returns the sha256 hex digest of the dedup key.
func Hash(t *entity.Transaction) string {
	sum := sha256.Sum256([]byte(Key(t)))
	return hex.EncodeToString(sum[:])
}

func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
