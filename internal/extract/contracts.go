// Package extract turns statement documents into raw transaction rows. One
// RowSource exists per format; all of them apply a mapping profile and emit
// rows keyed by canonical field name, leaving type parsing to the normalizer.
package extract

import (
	"context"
	"fmt"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

// Canonical field keys for RawRow.Fields.
const (
	FieldSourceAccount    = "source_account"
	FieldRecipientAccount = "recipient_account"
	FieldRecipientName    = "recipient_name"
	FieldAmount           = "amount"
	FieldCurrency         = "currency"
	FieldDescription      = "description"
	FieldDate             = "date"
)

// RawRow is one untyped row of a statement. It exists only within a single
// extraction pass and is never persisted.
type RawRow struct {
	Line   int // 1-based position in the source document
	Fields map[string]string
}

// RowSource streams the rows of one document in document order. Every call to
// Each is a fresh, complete pass; implementations keep no iterator state
// between calls. Row-scoped failures are collected and returned as warnings,
// never aborting the pass. A non-nil error means the document itself is
// unreadable.
type RowSource interface {
	Each(ctx context.Context, fn func(RawRow) error) ([]common.RowError, error)
}

// New selects the RowSource for a detected format. For pdf-scan the OCR
// sidecar text must already exist (textPath), at which point the document is
// handled exactly like a text-layer PDF: the two paths converge here.
func New(format constants.Format, path, textPath string, prof *profile.Profile) (RowSource, error) {
	switch format {
	case constants.FormatCSV:
		return &CSVSource{Path: path, Profile: prof}, nil
	case constants.FormatExcel:
		return &ExcelSource{Path: path, Profile: prof}, nil
	case constants.FormatPDFText:
		return &PDFTextSource{Path: path, Profile: prof}, nil
	case constants.FormatPDFScan:
		if textPath == "" {
			return nil, fmt.Errorf("scanned pdf has no ocr text yet: %w", common.ErrInvalidState)
		}
		return &PDFTextSource{Path: path, TextPath: textPath, Profile: prof}, nil
	default:
		return nil, fmt.Errorf("format %q: %w", format, common.ErrUnsupportedFormat)
	}
}
