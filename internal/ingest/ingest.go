package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/detect"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

// DocumentStore is the slice of the record store the ingestor writes.
type DocumentStore interface {
	Create(ctx context.Context, caseID, fileName, filePath string) (*entity.Document, error)
}

// Classifier detects and persists a registered document's format.
type Classifier interface {
	Classify(ctx context.Context, documentID uuid.UUID) (detect.Result, error)
}

// Result describes one registered statement file.
type Result struct {
	Path       string
	DocumentID uuid.UUID
	Format     constants.Format
	OCRStatus  constants.OCRStatus
	Err        string
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// FSIngestor registers statement files from the local filesystem.
type FSIngestor struct {
	docs       DocumentStore
	classifier Classifier
	logger     *slog.Logger
}

func NewFSIngestor(docs DocumentStore, classifier Classifier, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{docs: docs, classifier: classifier, logger: logger}
}

// IngestFile records one statement file for a case and classifies it.
func (i *FSIngestor) IngestFile(ctx context.Context, caseID, path string) (Result, error) {
	var out Result

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}
	out.Path = abs

	ext := constants.ExtOf(abs)
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return out, fmt.Errorf("extension %q: %w", ext, common.ErrUnsupportedFormat)
	}

	doc, err := i.docs.Create(ctx, caseID, filepath.Base(abs), abs)
	if err != nil {
		return out, err
	}
	out.DocumentID = doc.ID

	res, err := i.classifier.Classify(ctx, doc.ID)
	if err != nil {
		return out, err
	}
	out.Format = res.Format
	out.OCRStatus = res.OCRStatus

	i.logger.Info("document registered",
		"case_id", caseID, "document_id", doc.ID, "path", abs, "format", res.Format)
	return out, nil
}

// IngestDirectory walks root and registers every file with an accepted
// extension. Per-file failures are collected, not fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, caseID, root string) ([]Result, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []Result
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, Result{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := constants.AllowedExtensions[constants.ExtOf(path)]; !ok {
			return nil
		}
		stats.Matched++

		r, err := i.IngestFile(ctx, caseID, path)
		if err != nil {
			r.Err = err.Error()
			results = append(results, r)
			stats.Failed++
			return nil
		}
		results = append(results, r)
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return base != "." && strings.HasPrefix(base, ".") && base != string(os.PathSeparator)
}
