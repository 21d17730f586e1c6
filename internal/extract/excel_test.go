package extract

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
)

func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "statement.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExcelSource(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"Buchungstag", "Empfaenger", "Verwendungszweck", "Betrag"},
		{"15.03.2024", "ACME GmbH", "Rechnung 4711", "-1.234,56"},
		{"16.03.2024", "Beta AG", "Miete", "-800,00"},
	})

	rows, warnings := collect(t, &ExcelSource{Path: path, Profile: headerProfile()})
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Fields[FieldRecipientName] != "ACME GmbH" {
		t.Errorf("recipient = %q", rows[0].Fields[FieldRecipientName])
	}
	if rows[1].Fields[FieldAmount] != "-800,00" {
		t.Errorf("amount = %q", rows[1].Fields[FieldAmount])
	}
}

func TestNewSourceSelection(t *testing.T) {
	p := headerProfile()

	if _, err := New(constants.FormatCSV, "x.csv", "", p); err != nil {
		t.Errorf("csv: %v", err)
	}
	if _, err := New(constants.FormatExcel, "x.xlsx", "", p); err != nil {
		t.Errorf("excel: %v", err)
	}
	if _, err := New(constants.FormatPDFText, "x.pdf", "", p); err != nil {
		t.Errorf("pdf-text: %v", err)
	}
	if _, err := New(constants.FormatPDFScan, "x.pdf", "x.pdf.ocr.txt", p); err != nil {
		t.Errorf("pdf-scan with sidecar: %v", err)
	}
	if _, err := New(constants.FormatPDFScan, "x.pdf", "", p); !errors.Is(err, common.ErrInvalidState) {
		t.Errorf("pdf-scan without sidecar: err = %v, want ErrInvalidState", err)
	}
	if _, err := New("docx", "x.docx", "", p); !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("unknown format: err = %v, want ErrUnsupportedFormat", err)
	}
}
