package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

// DocumentStore is the slice of the record store the engine writes through.
// The store is the single source of truth for OCR state; the engine never
// caches status in memory, so progress survives a crash and stays visible to
// concurrent readers.
type DocumentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	TryMarkOCRRunning(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateOCRProgress(ctx context.Context, id uuid.UUID, progress int) error
	FinishOCR(ctx context.Context, id uuid.UUID, textPath string) error
	FailOCR(ctx context.Context, id uuid.UUID, message string) error
}

// PageExtractor runs the actual recognition. Satisfied by *Extractor;
// stubbed in tests.
type PageExtractor interface {
	PageCount(path string) (int, error)
	ExtractPages(ctx context.Context, path string, onPage func(PageResult)) (string, []string, error)
}

// Engine owns the OCR lifecycle of documents: at most one running job per
// document, forward-only status transitions, progress 0..100 written through
// the store after every page.
type Engine struct {
	docs      DocumentStore
	extractor PageExtractor
	timeout   time.Duration
	onDone    func(documentID uuid.UUID)
	logger    *slog.Logger

	wg sync.WaitGroup
}

type Option func(*Engine)

// WithJobTimeout bounds one OCR attempt. There is no hard cancel below this:
// a running job finishes or fails on its own.
func WithJobTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithOnDone installs a completion hook, e.g. to enqueue reprocessing of the
// document now that its text exists.
func WithOnDone(fn func(uuid.UUID)) Option {
	return func(e *Engine) { e.onDone = fn }
}

func NewEngine(docs DocumentStore, extractor PageExtractor, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		docs:      docs,
		extractor: extractor,
		timeout:   30 * time.Minute,
		logger:    logger,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start begins an asynchronous OCR job for the document and returns without
// awaiting it. Only ocr_required and ocr_failed documents may start; a
// document already running yields ErrAlreadyRunning, anything else
// ErrInvalidState. The conditional store update is what makes the
// at-most-one-job guarantee hold under concurrent calls.
func (e *Engine) Start(ctx context.Context, documentID uuid.UUID) error {
	doc, err := e.docs.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	switch doc.OCRStatus {
	case constants.OCRRequired, constants.OCRFailed:
	case constants.OCRRunning:
		return fmt.Errorf("document %s: %w", documentID, common.ErrAlreadyRunning)
	default:
		return fmt.Errorf("document %s has ocr status %s: %w", documentID, doc.OCRStatus, common.ErrInvalidState)
	}

	ok, err := e.docs.TryMarkOCRRunning(ctx, documentID)
	if err != nil {
		return err
	}
	if !ok {
		// lost the race against a concurrent Start
		return fmt.Errorf("document %s: %w", documentID, common.ErrAlreadyRunning)
	}

	e.logger.Info("ocr started", "document_id", documentID, "path", doc.FilePath)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		// detached from the caller: the RPC returns immediately and the job
		// reports through the store
		jobCtx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		e.run(jobCtx, doc)
	}()
	return nil
}

// Status reads the current OCR status and progress through the store.
func (e *Engine) Status(ctx context.Context, documentID uuid.UUID) (constants.OCRStatus, int, error) {
	doc, err := e.docs.GetByID(ctx, documentID)
	if err != nil {
		return "", 0, err
	}
	return doc.OCRStatus, doc.OCRProgress, nil
}

// Wait blocks until all in-flight jobs have finished. Used on shutdown and
// in tests.
func (e *Engine) Wait() {
	e.wg.Wait()
}

func (e *Engine) run(ctx context.Context, doc *entity.Document) {
	start := time.Now()

	if total, err := e.extractor.PageCount(doc.FilePath); err != nil {
		// corrupt or unreadable PDF: fail before rendering anything
		e.fail(ctx, doc.ID, fmt.Sprintf("unreadable pdf: %v", err))
		return
	} else {
		e.logger.Debug("ocr page count", "document_id", doc.ID, "pages", total)
	}

	text, warnings, err := e.extractor.ExtractPages(ctx, doc.FilePath, func(p PageResult) {
		progress := p.Page * 100 / p.Total
		if err := e.docs.UpdateOCRProgress(ctx, doc.ID, progress); err != nil {
			e.logger.Warn("ocr progress write failed", "document_id", doc.ID, "page", p.Page, "error", err)
		}
	})
	if err != nil {
		e.fail(ctx, doc.ID, err.Error())
		return
	}
	for _, w := range warnings {
		e.logger.Warn("ocr warning", "document_id", doc.ID, "warning", w)
	}

	// sidecar next to the source document; from here on the document is
	// handled exactly like a text-layer PDF
	sidecar := doc.FilePath + ".ocr.txt"
	if err := os.WriteFile(sidecar, []byte(text), 0o644); err != nil {
		e.fail(ctx, doc.ID, fmt.Sprintf("write sidecar: %v", err))
		return
	}
	finCtx, finCancel := terminalCtx(ctx)
	err = e.docs.FinishOCR(finCtx, doc.ID, sidecar)
	finCancel()
	if err != nil {
		e.logger.Error("ocr finish write failed", "document_id", doc.ID, "error", err)
		return
	}
	e.logger.Info("ocr done", "document_id", doc.ID, "duration", time.Since(start), "text_bytes", len(text), "warnings", len(warnings))

	if e.onDone != nil {
		e.onDone(doc.ID)
	}
}

func (e *Engine) fail(ctx context.Context, id uuid.UUID, msg string) {
	// progress freezes at its last written value
	writeCtx, cancel := terminalCtx(ctx)
	defer cancel()
	if err := e.docs.FailOCR(writeCtx, id, msg); err != nil {
		e.logger.Error("ocr failure write failed", "document_id", id, "error", err)
	}
	e.logger.Error("ocr failed", "document_id", id, "error", msg)
}

// terminalCtx detaches from the job deadline so a timed-out job can still
// record its own outcome; without it the document would stay ocr_running
// until the janitor sweeps it.
func terminalCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
}
