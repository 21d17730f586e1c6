// Package ocr turns scanned statement PDFs into text. Rendering and
// recognition shell out to poppler and tesseract; the per-page loop reports
// progress so long documents stay observable while they run.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Language  string // default "deu+eng" for the statements we see
	DPI       int    // rasterization DPI, default 300
	MaxPages  int    // 0 = no limit
}

// PageResult is the text of one recognized page.
type PageResult struct {
	Page  int
	Total int
	Text  string
}

// Extractor OCRs one PDF page by page.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "deu+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// PageCount reads the page count without rendering, so progress has a
// denominator before the first page finishes.
func (e *Extractor) PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	if e.cfg.MaxPages > 0 && n > e.cfg.MaxPages {
		n = e.cfg.MaxPages
	}
	return n, nil
}

// ExtractPages renders the PDF to page images and OCRs them in order,
// invoking onPage after each page. A page that fails recognition is reported
// as a warning and skipped; a rendering failure is fatal for the attempt.
func (e *Extractor) ExtractPages(ctx context.Context, path string, onPage func(PageResult)) (text string, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "iz-ocr-*")
	if err != nil {
		return "", nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("failed to remove ocr temp dir", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("pdftoppm: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	total := len(matches)
	for i, img := range matches {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", warnings, ctxErr
		}
		txt, w, err := e.tesseractOCR(ctx, img)
		warnings = append(warnings, w...)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i+1, err))
		} else {
			if b.Len() > 0 {
				b.WriteString("\n\f\n") // keep a clear page break marker
			}
			b.WriteString(txt)
		}
		if onPage != nil {
			onPage(PageResult{Page: i + 1, Total: total, Text: txt})
		}
	}
	return b.String(), warnings, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, path, "stdout", "-l", e.cfg.Language)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
