package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/dedup"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/detect"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/extract"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/normalize"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

// DocumentStore is the slice of the record store the processor touches.
type DocumentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	SetFormat(ctx context.Context, id uuid.UUID, format constants.Format, ocrStatus constants.OCRStatus) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}

// Result summarizes one extraction run over a document.
type Result struct {
	Format     constants.Format
	Inserted   int
	Duplicates int
	Skipped    int
	Warnings   []string
}

// Processor coordinates detection, row extraction, normalization and dedup
// for a single document. Reprocessing the same document is harmless: every
// row resolves to the same hash and lands as a duplicate.
type Processor struct {
	docs     DocumentStore
	detector *detect.Detector
	profiles *profile.Registry
	dedup    *dedup.Deduplicator
	logger   *slog.Logger
}

func NewProcessor(docs DocumentStore, detector *detect.Detector, profiles *profile.Registry, dd *dedup.Deduplicator, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{docs: docs, detector: detector, profiles: profiles, dedup: dd, logger: logger}
}

// Classify detects the document's format and persists it together with the
// derived OCR requirement.
func (p *Processor) Classify(ctx context.Context, documentID uuid.UUID) (detect.Result, error) {
	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return detect.Result{}, err
	}
	res, err := p.detector.Classify(doc.FilePath)
	if err != nil {
		return detect.Result{}, err
	}
	if err := p.docs.SetFormat(ctx, documentID, res.Format, res.OCRStatus); err != nil {
		return detect.Result{}, err
	}
	p.logger.Info("document classified", "document_id", documentID, "format", res.Format, "ocr_status", res.OCRStatus)
	return res, nil
}

// ExtractAndDedup extracts rows from a classified document using the named
// mapping profile, normalizes them and inserts the unique ones. Malformed
// rows are skipped and reported as warnings; only I/O and store failures
// abort the run.
func (p *Processor) ExtractAndDedup(ctx context.Context, documentID uuid.UUID, profileName string) (*Result, error) {
	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Format == "" {
		res, err := p.Classify(ctx, documentID)
		if err != nil {
			return nil, err
		}
		doc.Format = res.Format
		doc.OCRStatus = res.OCRStatus
	}

	textPath := ""
	if doc.Format == constants.FormatPDFScan {
		if doc.OCRStatus != constants.OCRDone || doc.TextPath == nil {
			return nil, fmt.Errorf("document %s needs OCR before extraction (status %s): %w",
				documentID, doc.OCRStatus, common.ErrInvalidState)
		}
		textPath = *doc.TextPath
	}

	prof := p.profiles.Get(profileName)
	if prof == nil {
		return nil, fmt.Errorf("mapping profile %q: %w", profileName, common.ErrNotFound)
	}

	src, err := extract.New(doc.Format, doc.FilePath, textPath, prof)
	if err != nil {
		return nil, err
	}
	norm := normalize.New(prof)

	res := &Result{Format: doc.Format}
	rowErrs, err := src.Each(ctx, func(row extract.RawRow) error {
		tx, err := norm.Normalize(row, doc.CaseID, doc.ID)
		if err != nil {
			var re common.RowError
			if errors.As(err, &re) {
				res.Skipped++
				res.Warnings = append(res.Warnings, re.Error())
				return nil
			}
			return err
		}
		inserted, err := p.dedup.Apply(ctx, tx)
		if err != nil {
			return err
		}
		if inserted {
			res.Inserted++
		} else {
			res.Duplicates++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, re := range rowErrs {
		res.Skipped++
		res.Warnings = append(res.Warnings, re.Error())
	}

	if err := p.docs.MarkProcessed(ctx, documentID); err != nil {
		return nil, err
	}
	p.logger.Info("document processed",
		"document_id", documentID,
		"format", doc.Format,
		"inserted", res.Inserted,
		"duplicates", res.Duplicates,
		"skipped", res.Skipped,
	)
	return res, nil
}
