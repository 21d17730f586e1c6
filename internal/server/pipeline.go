package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	v1 "github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/proto/insolvency/v1"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/export"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/ingest"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/ocr"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/pipeline"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/repository"
)

type PipelineService struct {
	v1.UnimplementedPipelineServiceServer
	processor *pipeline.Processor
	queue     *pipeline.Queue
	engine    *ocr.Engine
	ingestor  *ingest.FSIngestor
	exporter  *export.Service
	profiles  *profile.Registry
	txRepo    repository.TransactionRepository
	docRepo   repository.DocumentRepository
	logger    *slog.Logger
}

func NewPipelineService(
	proc *pipeline.Processor,
	queue *pipeline.Queue,
	engine *ocr.Engine,
	ingestor *ingest.FSIngestor,
	exporter *export.Service,
	profiles *profile.Registry,
	txRepo repository.TransactionRepository,
	docRepo repository.DocumentRepository,
	logger *slog.Logger,
) *PipelineService {
	return &PipelineService{
		processor: proc,
		queue:     queue,
		engine:    engine,
		ingestor:  ingestor,
		exporter:  exporter,
		profiles:  profiles,
		txRepo:    txRepo,
		docRepo:   docRepo,
		logger:    logger,
	}
}

func (s *PipelineService) ClassifyDocument(ctx context.Context, req *v1.ClassifyDocumentRequest) (*v1.ClassifyDocumentResponse, error) {
	id, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	res, err := s.processor.Classify(ctx, id)
	if err != nil {
		s.logger.Error("classify failed", "document_id", id, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.ClassifyDocumentResponse{
		Format:    string(res.Format),
		OcrStatus: string(res.OCRStatus),
	}, nil
}

func (s *PipelineService) StartOcr(ctx context.Context, req *v1.StartOcrRequest) (*v1.StartOcrResponse, error) {
	id, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if err := s.engine.Start(ctx, id); err != nil {
		s.logger.Error("start ocr failed", "document_id", id, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.StartOcrResponse{}, nil
}

func (s *PipelineService) GetOcrStatus(ctx context.Context, req *v1.GetOcrStatusRequest) (*v1.GetOcrStatusResponse, error) {
	id, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	st, progress, err := s.engine.Status(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.GetOcrStatusResponse{
		Status:   string(st),
		Progress: int32(progress),
	}, nil
}

func (s *PipelineService) ExtractAndDedup(ctx context.Context, req *v1.ExtractAndDedupRequest) (*v1.ExtractAndDedupResponse, error) {
	id, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	prof := strings.TrimSpace(req.GetProfile())
	if prof == "" {
		return nil, common.InvalidArgumentError("profile is required")
	}

	if req.GetAsync() {
		if err := s.queue.Enqueue(ctx, pipeline.Job{DocumentID: id, Profile: prof, SubmittedAt: time.Now()}); err != nil {
			return nil, common.GRPCStatus(err)
		}
		return &v1.ExtractAndDedupResponse{Queued: true}, nil
	}

	res, err := s.processor.ExtractAndDedup(ctx, id, prof)
	if err != nil {
		s.logger.Error("extraction failed", "document_id", id, "profile", prof, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.ExtractAndDedupResponse{
		Format:     string(res.Format),
		Inserted:   int32(res.Inserted),
		Duplicates: int32(res.Duplicates),
		Skipped:    int32(res.Skipped),
		Warnings:   res.Warnings,
	}, nil
}

func (s *PipelineService) ListTransactions(ctx context.Context, req *v1.ListTransactionsRequest) (*v1.ListTransactionsResponse, error) {
	caseID := strings.TrimSpace(req.GetCaseId())
	if caseID == "" {
		return nil, common.InvalidArgumentError("case_id is required")
	}
	txs, err := s.txRepo.ListByCase(ctx, caseID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.Transaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, toProtoTransaction(t))
	}
	return &v1.ListTransactionsResponse{Transactions: out}, nil
}

func (s *PipelineService) UpdateTransactionTags(ctx context.Context, req *v1.UpdateTransactionTagsRequest) (*v1.UpdateTransactionTagsResponse, error) {
	id, err := parseUUID(req.GetTransactionId(), "transaction_id")
	if err != nil {
		return nil, err
	}
	t, err := s.txRepo.UpdateTags(ctx, id, req.GetTags())
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.UpdateTransactionTagsResponse{Transaction: toProtoTransaction(t)}, nil
}

func (s *PipelineService) SetTransactionExcluded(ctx context.Context, req *v1.SetTransactionExcludedRequest) (*v1.SetTransactionExcludedResponse, error) {
	id, err := parseUUID(req.GetTransactionId(), "transaction_id")
	if err != nil {
		return nil, err
	}
	if err := s.txRepo.SetExcluded(ctx, id, req.GetExcluded()); err != nil {
		return nil, common.GRPCStatus(err)
	}
	txs, err := s.txRepo.GetByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	if len(txs) != 1 {
		return nil, common.GRPCStatus(common.ErrNotFound)
	}
	return &v1.SetTransactionExcludedResponse{Transaction: toProtoTransaction(txs[0])}, nil
}

func (s *PipelineService) RegisterProfile(ctx context.Context, req *v1.RegisterProfileRequest) (*v1.RegisterProfileResponse, error) {
	if len(req.GetProfileJson()) == 0 {
		return nil, common.InvalidArgumentError("profile_json is required")
	}
	p, err := profile.ParseJSON(req.GetProfileJson())
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}
	s.profiles.Put(p)
	s.logger.Info("mapping profile registered", "name", p.Name, "institution", p.Institution)
	return &v1.RegisterProfileResponse{Name: p.Name}, nil
}

func (s *PipelineService) RegisterDocument(ctx context.Context, req *v1.RegisterDocumentRequest) (*v1.RegisterDocumentResponse, error) {
	caseID := strings.TrimSpace(req.GetCaseId())
	if caseID == "" {
		return nil, common.InvalidArgumentError("case_id is required")
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}

	res, err := s.ingestor.IngestFile(ctx, caseID, path)
	if err != nil {
		s.logger.Error("register document failed", "case_id", caseID, "path", path, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.RegisterDocumentResponse{
		DocumentId: res.DocumentID.String(),
		Format:     string(res.Format),
		OcrStatus:  string(res.OCRStatus),
	}, nil
}

func (s *PipelineService) ExportTransactions(ctx context.Context, req *v1.ExportTransactionsRequest) (*v1.ExportTransactionsResponse, error) {
	caseID := strings.TrimSpace(req.GetCaseId())
	if caseID == "" {
		return nil, common.InvalidArgumentError("case_id is required")
	}
	data, count, err := s.exporter.ExportTransactionsXLSX(ctx, caseID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.ExportTransactionsResponse{Xlsx: data, Count: int32(count)}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(field + " must be a UUID")
	}
	return id, nil
}
