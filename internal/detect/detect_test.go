package detect

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClassifyByExtension(t *testing.T) {
	dir := t.TempDir()
	d := New(0, nil)

	tests := []struct {
		name   string
		file   string
		want   constants.Format
		wantOC constants.OCRStatus
	}{
		{"csv", "statement.csv", constants.FormatCSV, constants.OCRNone},
		{"csv uppercase ext", "STATEMENT.CSV", constants.FormatCSV, constants.OCRNone},
		{"xlsx", "statement.xlsx", constants.FormatExcel, constants.OCRNone},
		{"xls", "statement.xls", constants.FormatExcel, constants.OCRNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, []byte("some bytes"))
			res, err := d.Classify(path)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if res.Format != tc.want {
				t.Errorf("format = %q, want %q", res.Format, tc.want)
			}
			if res.OCRStatus != tc.wantOC {
				t.Errorf("ocr status = %q, want %q", res.OCRStatus, tc.wantOC)
			}
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	dir := t.TempDir()
	d := New(0, nil)

	path := writeFile(t, dir, "notes.docx", []byte("x"))
	if _, err := d.Classify(path); !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("docx: err = %v, want ErrUnsupportedFormat", err)
	}

	empty := writeFile(t, dir, "empty.csv", nil)
	if _, err := d.Classify(empty); !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("zero-byte: err = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := d.Classify(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestClassifyUnreadablePDFRoutesToOCR(t *testing.T) {
	// not a real PDF, so the probe finds no text layer and the safe
	// direction is the scan path
	dir := t.TempDir()
	d := New(0, nil)

	path := writeFile(t, dir, "scan.pdf", []byte("%PDF-1.4 garbage, no xref"))
	res, err := d.Classify(path)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Format != constants.FormatPDFScan {
		t.Errorf("format = %q, want %q", res.Format, constants.FormatPDFScan)
	}
	if res.OCRStatus != constants.OCRRequired {
		t.Errorf("ocr status = %q, want %q", res.OCRStatus, constants.OCRRequired)
	}
}
