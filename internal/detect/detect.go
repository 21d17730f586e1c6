// Package detect classifies uploaded statement documents into the formats
// the extractors understand. For PDFs it probes the text layer to decide
// between pdf-text and pdf-scan.
package detect

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
)

// MinTextChars is the minimum count of non-whitespace characters the probe
// must find for a PDF to count as having a usable text layer.
const MinTextChars = 50

// DefaultProbePages bounds how many pages the probe samples. The decision is
// made over the aggregate, not per page: a PDF mixing text and scanned pages
// is classified by whichever side the sampled total lands on. Known
// limitation, kept from the source system.
const DefaultProbePages = 3

type Detector struct {
	probePages int
	logger     *slog.Logger
}

func New(probePages int, logger *slog.Logger) *Detector {
	if probePages <= 0 {
		probePages = DefaultProbePages
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{probePages: probePages, logger: logger}
}

// Result pairs the detected format with the initial OCR status the document
// store should record for it.
type Result struct {
	Format    constants.Format
	OCRStatus constants.OCRStatus
}

// Classify inspects the file at path and returns its format. The extension
// narrows candidates; PDFs are probed for a text layer.
func (d *Detector) Classify(path string) (Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Size() == 0 {
		return Result{}, fmt.Errorf("%s: zero-byte file: %w", path, common.ErrUnsupportedFormat)
	}

	ext := constants.ExtOf(path)
	switch {
	case ext == "csv":
		return Result{Format: constants.FormatCSV, OCRStatus: constants.OCRNone}, nil
	case constants.IsExcelExt(ext):
		return Result{Format: constants.FormatExcel, OCRStatus: constants.OCRNone}, nil
	case constants.IsPDFExt(ext):
		chars := d.probeTextLayer(path)
		if chars > MinTextChars {
			d.logger.Debug("pdf has text layer", "path", path, "chars", chars)
			return Result{Format: constants.FormatPDFText, OCRStatus: constants.OCRNone}, nil
		}
		d.logger.Debug("pdf appears scanned", "path", path, "chars", chars)
		return Result{Format: constants.FormatPDFScan, OCRStatus: constants.OCRRequired}, nil
	default:
		return Result{}, fmt.Errorf("extension %q: %w", ext, common.ErrUnsupportedFormat)
	}
}

// probeTextLayer counts non-whitespace characters extracted from the first
// probePages pages. Any library failure counts as zero: the document then
// routes through OCR, which is the safe direction to fail in.
func (d *Detector) probeTextLayer(path string) (chars int) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("pdf probe panicked, assuming no text layer", "path", path, "panic", r)
			chars = 0
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		d.logger.Warn("pdf probe open failed, assuming no text layer", "path", path, "error", err)
		return 0
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > d.probePages {
		pages = d.probePages
	}
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				chars += len(strings.TrimSpace(word.S))
			}
		}
		if chars > MinTextChars {
			return chars
		}
	}
	return chars
}
