package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

type fakeDocs struct {
	mu       sync.Mutex
	doc      entity.Document
	progress []int
}

func newFakeDocs(status constants.OCRStatus, path string) *fakeDocs {
	return &fakeDocs{doc: entity.Document{
		ID:        uuid.New(),
		CaseID:    "case-1",
		FileName:  filepath.Base(path),
		FilePath:  path,
		Format:    constants.FormatPDFScan,
		OCRStatus: status,
	}}
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.doc.ID {
		return nil, common.ErrNotFound
	}
	d := f.doc
	return &d, nil
}

func (f *fakeDocs) TryMarkOCRRunning(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.doc.OCRStatus {
	case constants.OCRRequired, constants.OCRFailed:
		f.doc.OCRStatus = constants.OCRRunning
		f.doc.OCRProgress = 0
		f.doc.OCRError = nil
		return true, nil
	default:
		return false, nil
	}
}

func (f *fakeDocs) UpdateOCRProgress(_ context.Context, id uuid.UUID, progress int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.doc.OCRStatus != constants.OCRRunning || progress < f.doc.OCRProgress {
		return nil
	}
	f.doc.OCRProgress = progress
	f.progress = append(f.progress, progress)
	return nil
}

func (f *fakeDocs) FinishOCR(_ context.Context, id uuid.UUID, textPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc.OCRStatus = constants.OCRDone
	f.doc.OCRProgress = 100
	f.doc.TextPath = &textPath
	return nil
}

func (f *fakeDocs) FailOCR(_ context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc.OCRStatus = constants.OCRFailed
	f.doc.OCRError = &message
	return nil
}

func (f *fakeDocs) snapshot() entity.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doc
}

type stubExtractor struct {
	pages   int
	failAt  int // page that errors the whole run, 0 = none
	badOpen bool
}

func (s *stubExtractor) PageCount(string) (int, error) {
	if s.badOpen {
		return 0, errors.New("not a pdf")
	}
	return s.pages, nil
}

func (s *stubExtractor) ExtractPages(ctx context.Context, _ string, onPage func(PageResult)) (string, []string, error) {
	var text string
	for p := 1; p <= s.pages; p++ {
		if s.failAt != 0 && p == s.failAt {
			return "", nil, fmt.Errorf("page %d: render failed", p)
		}
		text += fmt.Sprintf("page %d text\n", p)
		onPage(PageResult{Page: p, Total: s.pages, Text: "..."})
	}
	return text, nil, nil
}

func TestEngineRunsToCompletion(t *testing.T) {
	pdfPath := filepath.Join(t.TempDir(), "scan.pdf")
	docs := newFakeDocs(constants.OCRRequired, pdfPath)
	e := NewEngine(docs, &stubExtractor{pages: 4}, nil)

	if err := e.Start(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.Wait()

	d := docs.snapshot()
	if d.OCRStatus != constants.OCRDone {
		t.Fatalf("status = %s, want ocr_done (error: %v)", d.OCRStatus, d.OCRError)
	}
	if d.OCRProgress != 100 {
		t.Errorf("progress = %d, want 100", d.OCRProgress)
	}
	if d.TextPath == nil || *d.TextPath != pdfPath+".ocr.txt" {
		t.Fatalf("text path = %v, want sidecar next to source", d.TextPath)
	}
	raw, err := os.ReadFile(*d.TextPath)
	if err != nil {
		t.Fatalf("sidecar: %v", err)
	}
	if len(raw) == 0 {
		t.Error("sidecar is empty")
	}

	for i := 1; i < len(docs.progress); i++ {
		if docs.progress[i] < docs.progress[i-1] {
			t.Fatalf("progress regressed: %v", docs.progress)
		}
	}
	if docs.progress[len(docs.progress)-1] != 100 {
		t.Errorf("last in-run progress = %d, want 100", docs.progress[len(docs.progress)-1])
	}
}

func TestEngineCompletionHook(t *testing.T) {
	pdfPath := filepath.Join(t.TempDir(), "scan.pdf")
	docs := newFakeDocs(constants.OCRRequired, pdfPath)
	done := make(chan uuid.UUID, 1)
	e := NewEngine(docs, &stubExtractor{pages: 2}, nil, WithOnDone(func(id uuid.UUID) { done <- id }))

	if err := e.Start(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.Wait()

	select {
	case id := <-done:
		if id != docs.doc.ID {
			t.Errorf("hook got %s, want %s", id, docs.doc.ID)
		}
	default:
		t.Fatal("completion hook not invoked")
	}
}

func TestEngineRejectsConcurrentStart(t *testing.T) {
	docs := newFakeDocs(constants.OCRRunning, "x.pdf")
	e := NewEngine(docs, &stubExtractor{pages: 1}, nil)

	err := e.Start(context.Background(), docs.doc.ID)
	if !errors.Is(err, common.ErrAlreadyRunning) {
		t.Errorf("err = %v, want ErrAlreadyRunning", err)
	}
}

func TestEngineRejectsInvalidState(t *testing.T) {
	for _, status := range []constants.OCRStatus{constants.OCRNone, constants.OCRDone} {
		docs := newFakeDocs(status, "x.pdf")
		e := NewEngine(docs, &stubExtractor{pages: 1}, nil)
		err := e.Start(context.Background(), docs.doc.ID)
		if !errors.Is(err, common.ErrInvalidState) {
			t.Errorf("status %s: err = %v, want ErrInvalidState", status, err)
		}
	}
}

func TestEngineFailureFreezesProgress(t *testing.T) {
	pdfPath := filepath.Join(t.TempDir(), "scan.pdf")
	docs := newFakeDocs(constants.OCRRequired, pdfPath)
	e := NewEngine(docs, &stubExtractor{pages: 4, failAt: 3}, nil)

	if err := e.Start(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.Wait()

	d := docs.snapshot()
	if d.OCRStatus != constants.OCRFailed {
		t.Fatalf("status = %s, want ocr_failed", d.OCRStatus)
	}
	if d.OCRError == nil {
		t.Fatal("expected error detail on failed document")
	}
	if d.OCRProgress == 100 {
		t.Error("failed run must not report full progress")
	}

	// a failed document may retry
	if err := e.Start(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("retry Start: %v", err)
	}
	e.Wait()
}

func TestEngineFailsUnreadablePDF(t *testing.T) {
	docs := newFakeDocs(constants.OCRRequired, "x.pdf")
	e := NewEngine(docs, &stubExtractor{badOpen: true}, nil)

	if err := e.Start(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.Wait()

	if d := docs.snapshot(); d.OCRStatus != constants.OCRFailed {
		t.Errorf("status = %s, want ocr_failed", d.OCRStatus)
	}
}

// ctxDocs refuses writes on an expired context, like the real repository.
type ctxDocs struct {
	*fakeDocs
}

func (c *ctxDocs) FailOCR(ctx context.Context, id uuid.UUID, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.fakeDocs.FailOCR(ctx, id, message)
}

func (c *ctxDocs) FinishOCR(ctx context.Context, id uuid.UUID, textPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.fakeDocs.FinishOCR(ctx, id, textPath)
}

type stalledExtractor struct{}

func (stalledExtractor) PageCount(string) (int, error) { return 1, nil }

func (stalledExtractor) ExtractPages(ctx context.Context, _ string, _ func(PageResult)) (string, []string, error) {
	<-ctx.Done()
	return "", nil, ctx.Err()
}

func TestEngineTimeoutRecordsFailure(t *testing.T) {
	docs := newFakeDocs(constants.OCRRequired, "x.pdf")
	e := NewEngine(&ctxDocs{fakeDocs: docs}, stalledExtractor{}, nil, WithJobTimeout(30*time.Millisecond))

	if err := e.Start(context.Background(), docs.doc.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.Wait()

	d := docs.snapshot()
	if d.OCRStatus != constants.OCRFailed {
		t.Fatalf("status = %s, want ocr_failed after the job deadline", d.OCRStatus)
	}
	if d.OCRError == nil || !strings.Contains(*d.OCRError, "deadline") {
		t.Errorf("error detail = %v, want the deadline cause", d.OCRError)
	}
}

func TestEngineStatus(t *testing.T) {
	docs := newFakeDocs(constants.OCRRequired, "x.pdf")
	e := NewEngine(docs, &stubExtractor{pages: 1}, nil)

	st, progress, err := e.Status(context.Background(), docs.doc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if st != constants.OCRRequired || progress != 0 {
		t.Errorf("status = (%s, %d), want (ocr_required, 0)", st, progress)
	}

	if _, _, err := e.Status(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}
