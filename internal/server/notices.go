package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/proto/insolvency/v1"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/notice"
)

type NoticeService struct {
	v1.UnimplementedNoticeServiceServer
	generator *notice.Generator
	logger    *slog.Logger
}

func NewNoticeService(generator *notice.Generator, logger *slog.Logger) *NoticeService {
	return &NoticeService{generator: generator, logger: logger}
}

func (s *NoticeService) GenerateNotices(ctx context.Context, req *v1.GenerateNoticesRequest) (*v1.GenerateNoticesResponse, error) {
	caseID := strings.TrimSpace(req.GetCaseId())
	if caseID == "" {
		return nil, common.InvalidArgumentError("case_id is required")
	}
	ids := make([]uuid.UUID, 0, len(req.GetTransactionIds()))
	for _, raw := range req.GetTransactionIds() {
		id, err := parseUUID(raw, "transaction_ids")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	notices, err := s.generator.Generate(ctx, caseID, ids)
	if err != nil {
		s.logger.Error("generate notices failed", "case_id", caseID, "transactions", len(ids), "error", err)
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.Notice, 0, len(notices))
	for _, n := range notices {
		out = append(out, toProtoNotice(n))
	}
	return &v1.GenerateNoticesResponse{Notices: out}, nil
}

func (s *NoticeService) AcceptNotice(ctx context.Context, req *v1.AcceptNoticeRequest) (*v1.AcceptNoticeResponse, error) {
	id, err := parseUUID(req.GetNoticeId(), "notice_id")
	if err != nil {
		return nil, err
	}
	n, err := s.generator.Accept(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.AcceptNoticeResponse{Notice: toProtoNotice(n)}, nil
}

func (s *NoticeService) SendNotice(ctx context.Context, req *v1.SendNoticeRequest) (*v1.SendNoticeResponse, error) {
	id, err := parseUUID(req.GetNoticeId(), "notice_id")
	if err != nil {
		return nil, err
	}
	n, err := s.generator.Send(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.SendNoticeResponse{Notice: toProtoNotice(n)}, nil
}

func (s *NoticeService) ListNotices(ctx context.Context, req *v1.ListNoticesRequest) (*v1.ListNoticesResponse, error) {
	caseID := strings.TrimSpace(req.GetCaseId())
	if caseID == "" {
		return nil, common.InvalidArgumentError("case_id is required")
	}
	notices, err := s.generator.List(ctx, caseID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.Notice, 0, len(notices))
	for _, n := range notices {
		out = append(out, toProtoNotice(n))
	}
	return &v1.ListNoticesResponse{Notices: out}, nil
}

func toProtoNotice(n *entity.Notice) *v1.Notice {
	ids := make([]string, len(n.TransactionIDs))
	for i, id := range n.TransactionIDs {
		ids[i] = id.String()
	}
	return &v1.Notice{
		Id:                  n.ID.String(),
		CaseId:              n.CaseID,
		CounterpartyName:    n.CounterpartyName,
		CounterpartyAccount: n.CounterpartyAccount,
		Status:              string(n.Status),
		FilePath:            n.FilePath,
		Content:             n.Content,
		TransactionIds:      ids,
		CreatedAt:           n.CreatedAt.Format(timeFormat),
		UpdatedAt:           n.UpdatedAt.Format(timeFormat),
	}
}
