package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
)

// Notice is one counterparty-grouped claim artifact with a forward-only
// status lifecycle.
type Notice struct {
	ID                  uuid.UUID              `json:"id"`
	CaseID              string                 `json:"case_id"`
	CounterpartyName    string                 `json:"counterparty_name"`
	CounterpartyAccount string                 `json:"counterparty_account,omitempty"`
	Status              constants.NoticeStatus `json:"status"`
	FilePath            string                 `json:"file_path"`
	Content             string                 `json:"content"`
	TransactionIDs      []uuid.UUID            `json:"transaction_ids"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}
