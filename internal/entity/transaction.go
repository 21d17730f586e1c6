package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the canonical record produced by normalization and kept
// unique per (case_id, tx_hash). Amount is fixed-point; float64 is never
// used for money anywhere in the pipeline.
type Transaction struct {
	ID               uuid.UUID         `json:"id"`
	CaseID           string            `json:"case_id"`
	DocumentID       uuid.UUID         `json:"document_id"`
	SourceAccount    string            `json:"source_account"`
	RecipientAccount string            `json:"recipient_account"`
	RecipientName    string            `json:"recipient_name"`
	Amount           decimal.Decimal   `json:"amount"`
	Currency         string            `json:"currency,omitempty"`
	Description      string            `json:"description"`
	TxDate           time.Time         `json:"transaction_date"`
	TxHash           string            `json:"tx_hash"`
	Tags             map[string]string `json:"tags,omitempty"`
	Excluded         bool              `json:"excluded"`
	NoticeID         *uuid.UUID        `json:"notice_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// Counterparty returns the grouping identity for notices:
// recipient account when present, recipient name as fallback, "" when neither.
func (t *Transaction) Counterparty() string {
	if acc := t.RecipientAccount; acc != "" {
		return acc
	}
	return t.RecipientName
}
