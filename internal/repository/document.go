package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/document"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Create(ctx context.Context, caseID, fileName, filePath string) (*entity.Document, error)
	SetFormat(ctx context.Context, id uuid.UUID, format constants.Format, ocrStatus constants.OCRStatus) error
	// TryMarkOCRRunning atomically transitions ocr_required|ocr_failed into
	// ocr_running with progress 0. Returns false when the guard matched no row,
	// which the engine reports as AlreadyRunning.
	TryMarkOCRRunning(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateOCRProgress(ctx context.Context, id uuid.UUID, progress int) error
	FinishOCR(ctx context.Context, id uuid.UUID, textPath string) error
	FailOCR(ctx context.Context, id uuid.UUID, message string) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	// SweepStaleOCR fails documents stuck in ocr_running longer than maxAge.
	SweepStaleOCR(ctx context.Context, maxAge time.Duration) (int, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	d, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to load document", "document_id", id, "error", err)
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepository) Create(ctx context.Context, caseID, fileName, filePath string) (*entity.Document, error) {
	d, err := r.client.Document.Create().
		SetCaseID(caseID).
		SetFileName(fileName).
		SetFilePath(filePath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "case_id", caseID, "file", fileName, "error", err)
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepository) SetFormat(ctx context.Context, id uuid.UUID, format constants.Format, ocrStatus constants.OCRStatus) error {
	err := r.client.Document.UpdateOneID(id).
		SetFormat(string(format)).
		SetOcrStatus(string(ocrStatus)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (r *documentRepository) TryMarkOCRRunning(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.OcrStatusIn(string(constants.OCRRequired), string(constants.OCRFailed)),
		).
		SetOcrStatus(string(constants.OCRRunning)).
		SetOcrProgress(0).
		SetOcrStartedAt(time.Now()).
		ClearOcrError().
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *documentRepository) UpdateOCRProgress(ctx context.Context, id uuid.UUID, progress int) error {
	// Guarded so a late write can never move progress backwards.
	_, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.OcrStatus(string(constants.OCRRunning)),
			document.OcrProgressLTE(progress),
		).
		SetOcrProgress(progress).
		Save(ctx)
	return err
}

func (r *documentRepository) FinishOCR(ctx context.Context, id uuid.UUID, textPath string) error {
	err := r.client.Document.UpdateOneID(id).
		SetOcrStatus(string(constants.OCRDone)).
		SetOcrProgress(100).
		SetTextPath(textPath).
		ClearOcrError().
		Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (r *documentRepository) FailOCR(ctx context.Context, id uuid.UUID, message string) error {
	// Progress stays frozen at its last known value.
	err := r.client.Document.UpdateOneID(id).
		SetOcrStatus(string(constants.OCRFailed)).
		SetOcrError(message).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (r *documentRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	err := r.client.Document.UpdateOneID(id).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (r *documentRepository) SweepStaleOCR(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	n, err := r.client.Document.Update().
		Where(
			document.OcrStatus(string(constants.OCRRunning)),
			document.OcrStartedAtLT(cutoff),
		).
		SetOcrStatus(string(constants.OCRFailed)).
		SetOcrError("ocr job abandoned: no progress before deadline").
		Save(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Warn("swept stale ocr jobs", "count", n, "max_age", maxAge)
	}
	return n, nil
}

func toDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          d.ID,
		CaseID:      d.CaseID,
		FileName:    d.FileName,
		FilePath:    d.FilePath,
		Format:      constants.Format(d.Format),
		OCRStatus:   constants.OCRStatus(d.OcrStatus),
		OCRProgress: d.OcrProgress,
		OCRError:    d.OcrError,
		TextPath:    d.TextPath,
		UploadedAt:  d.UploadedAt,
		ProcessedAt: d.ProcessedAt,
	}
}
