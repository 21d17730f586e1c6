package server

import (
	"time"

	v1 "github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/proto/insolvency/v1"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

const timeFormat = time.RFC3339Nano

func toProtoTransaction(t *entity.Transaction) *v1.Transaction {
	noticeID := ""
	if t.NoticeID != nil {
		noticeID = t.NoticeID.String()
	}
	return &v1.Transaction{
		Id:               t.ID.String(),
		CaseId:           t.CaseID,
		DocumentId:       t.DocumentID.String(),
		SourceAccount:    t.SourceAccount,
		RecipientAccount: t.RecipientAccount,
		RecipientName:    t.RecipientName,
		Amount:           t.Amount.StringFixed(2),
		Currency:         t.Currency,
		Description:      t.Description,
		TxDate:           t.TxDate.Format("2006-01-02"),
		TxHash:           t.TxHash,
		Tags:             t.Tags,
		Excluded:         t.Excluded,
		NoticeId:         noticeID,
		CreatedAt:        t.CreatedAt.Format(timeFormat),
	}
}
