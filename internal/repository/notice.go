package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/notice"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

type NoticeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error)
	ListByCase(ctx context.Context, caseID string) ([]*entity.Notice, error)
	// Create persists the notice and links the grouped transactions to it in
	// one statement, so a partially created group is never observable.
	Create(ctx context.Context, n *entity.Notice) (*entity.Notice, error)
	// UpdateStatusIf advances the status only when the current status equals
	// from. Returns false when the guard matched no row.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to constants.NoticeStatus) (bool, error)
}

type noticeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNoticeRepository(client *ent.Client, logger *slog.Logger) NoticeRepository {
	return &noticeRepository{client: client, logger: logger}
}

func (r *noticeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error) {
	row, err := r.client.Notice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	txIDs, err := row.QueryTransactions().IDs(ctx)
	if err != nil {
		return nil, err
	}
	return toNotice(row, txIDs), nil
}

func (r *noticeRepository) ListByCase(ctx context.Context, caseID string) ([]*entity.Notice, error) {
	rows, err := r.client.Notice.Query().
		Where(notice.CaseID(caseID)).
		Order(notice.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list notices", "case_id", caseID, "error", err)
		return nil, err
	}
	out := make([]*entity.Notice, 0, len(rows))
	for _, row := range rows {
		txIDs, err := row.QueryTransactions().IDs(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, toNotice(row, txIDs))
	}
	return out, nil
}

func (r *noticeRepository) Create(ctx context.Context, n *entity.Notice) (*entity.Notice, error) {
	c := r.client.Notice.Create().
		SetCaseID(n.CaseID).
		SetCounterpartyName(n.CounterpartyName).
		SetStatus(string(constants.NoticeGenerated)).
		SetFilePath(n.FilePath).
		SetContent(n.Content).
		AddTransactionIDs(n.TransactionIDs...)
	if n.CounterpartyAccount != "" {
		c.SetCounterpartyAccount(n.CounterpartyAccount)
	}
	row, err := c.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create notice", "case_id", n.CaseID, "counterparty", n.CounterpartyName, "error", err)
		return nil, err
	}
	return toNotice(row, n.TransactionIDs), nil
}

func (r *noticeRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to constants.NoticeStatus) (bool, error) {
	n, err := r.client.Notice.Update().
		Where(notice.ID(id), notice.Status(string(from))).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func toNotice(n *ent.Notice, txIDs []uuid.UUID) *entity.Notice {
	return &entity.Notice{
		ID:                  n.ID,
		CaseID:              n.CaseID,
		CounterpartyName:    n.CounterpartyName,
		CounterpartyAccount: n.CounterpartyAccount,
		Status:              constants.NoticeStatus(n.Status),
		FilePath:            n.FilePath,
		Content:             n.Content,
		TransactionIDs:      txIDs,
		CreatedAt:           n.CreatedAt,
		UpdatedAt:           n.UpdatedAt,
	}
}
