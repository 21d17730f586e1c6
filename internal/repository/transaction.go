package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/transaction"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

type TransactionRepository interface {
	ListByCase(ctx context.Context, caseID string) ([]*entity.Transaction, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Transaction, error)
	// InsertIfAbsent persists the transaction unless a row with the same
	// (case_id, tx_hash) already exists. A uniqueness violation is a normal
	// outcome, reported as inserted=false, never as an error.
	InsertIfAbsent(ctx context.Context, t *entity.Transaction) (bool, error)
	UpdateTags(ctx context.Context, id uuid.UUID, tags map[string]string) (*entity.Transaction, error)
	SetExcluded(ctx context.Context, id uuid.UUID, excluded bool) error
}

type transactionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionRepository(client *ent.Client, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{client: client, logger: logger}
}

func (r *transactionRepository) ListByCase(ctx context.Context, caseID string) ([]*entity.Transaction, error) {
	rows, err := r.client.Transaction.Query().
		Where(transaction.CaseID(caseID)).
		Order(transaction.ByTxDate(), transaction.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list transactions", "case_id", caseID, "error", err)
		return nil, err
	}
	out := make([]*entity.Transaction, len(rows))
	for i, row := range rows {
		out[i] = toTransaction(row)
	}
	return out, nil
}

func (r *transactionRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Transaction, error) {
	rows, err := r.client.Transaction.Query().
		Where(transaction.IDIn(ids...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load transactions", "count", len(ids), "error", err)
		return nil, err
	}
	out := make([]*entity.Transaction, len(rows))
	for i, row := range rows {
		out[i] = toTransaction(row)
	}
	return out, nil
}

func (r *transactionRepository) InsertIfAbsent(ctx context.Context, t *entity.Transaction) (bool, error) {
	c := r.client.Transaction.Create().
		SetCaseID(t.CaseID).
		SetDocumentID(t.DocumentID).
		SetSourceAccount(t.SourceAccount).
		SetRecipientAccount(t.RecipientAccount).
		SetRecipientName(t.RecipientName).
		SetAmount(t.Amount.StringFixed(2)).
		SetDescription(t.Description).
		SetTxDate(t.TxDate).
		SetTxHash(t.TxHash)
	if t.Currency != "" {
		c.SetCurrency(t.Currency)
	}
	if len(t.Tags) > 0 {
		c.SetTags(t.Tags)
	}
	row, err := c.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// same tx_hash already stored for this case
			return false, nil
		}
		r.logger.Error("failed to insert transaction", "case_id", t.CaseID, "tx_hash", t.TxHash, "error", err)
		return false, err
	}
	t.ID = row.ID
	t.CreatedAt = row.CreatedAt
	return true, nil
}

func (r *transactionRepository) UpdateTags(ctx context.Context, id uuid.UUID, tags map[string]string) (*entity.Transaction, error) {
	row, err := r.client.Transaction.UpdateOneID(id).
		SetTags(tags).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toTransaction(row), nil
}

func (r *transactionRepository) SetExcluded(ctx context.Context, id uuid.UUID, excluded bool) error {
	err := r.client.Transaction.UpdateOneID(id).
		SetExcluded(excluded).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func toTransaction(t *ent.Transaction) *entity.Transaction {
	amount, err := decimal.NewFromString(t.Amount)
	if err != nil {
		// numeric column guarantees a parseable value; a zero here would
		// indicate column corruption, surfaced by the tx_hash mismatch
		amount = decimal.Zero
	}
	return &entity.Transaction{
		ID:               t.ID,
		CaseID:           t.CaseID,
		DocumentID:       t.DocumentID,
		SourceAccount:    t.SourceAccount,
		RecipientAccount: t.RecipientAccount,
		RecipientName:    t.RecipientName,
		Amount:           amount,
		Currency:         t.Currency,
		Description:      t.Description,
		TxDate:           t.TxDate,
		TxHash:           t.TxHash,
		Tags:             t.Tags,
		Excluded:         t.Excluded,
		NoticeID:         t.NoticeID,
		CreatedAt:        t.CreatedAt,
	}
}
