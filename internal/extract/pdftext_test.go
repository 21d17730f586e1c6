package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.pdf.ocr.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func pdfProfile() *profile.Profile {
	return &profile.Profile{Name: "pdf", DateOrder: "dmy", DecimalComma: true}
}

func TestPDFTextRowsFromSidecar(t *testing.T) {
	sidecar := writeSidecar(t, ""+
		"Kontoauszug Nr. 3/2024\n"+
		"Alte Bank AG, Postfach 1\n"+
		"\n"+
		"15.03.2024 Lastschrift ACME GmbH Rechnung 4711 -1.234,56\n"+
		"16.03.2024 Dauerauftrag Miete -800,00\n"+
		"zzgl. Nebenkosten laut Vertrag\n"+
		"17.03.2024 Gutschrift Erstattung 59,90\n")

	src := &PDFTextSource{Path: "scan.pdf", TextPath: sidecar, Profile: pdfProfile()}
	rows, warnings := collect(t, src)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	if rows[0].Fields[FieldDate] != "15.03.2024" {
		t.Errorf("date = %q", rows[0].Fields[FieldDate])
	}
	if rows[0].Fields[FieldAmount] != "-1.234,56" {
		t.Errorf("amount = %q", rows[0].Fields[FieldAmount])
	}
	if rows[0].Fields[FieldDescription] != "Lastschrift ACME GmbH Rechnung 4711" {
		t.Errorf("description = %q", rows[0].Fields[FieldDescription])
	}

	// the wrapped line folds into row 2's description
	if got := rows[1].Fields[FieldDescription]; got != "Dauerauftrag Miete zzgl. Nebenkosten laut Vertrag" {
		t.Errorf("continuation description = %q", got)
	}
	if rows[2].Fields[FieldAmount] != "59,90" {
		t.Errorf("amount = %q", rows[2].Fields[FieldAmount])
	}
}

func TestPDFTextLastAmountWins(t *testing.T) {
	// trailing balance column: the booked amount is the last token
	sidecar := writeSidecar(t, "15.03.2024 Ueberweisung -250,00 1.750,00\n")
	src := &PDFTextSource{TextPath: sidecar, Profile: pdfProfile()}
	rows, warnings := collect(t, src)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Fields[FieldAmount] != "1.750,00" {
		t.Errorf("amount = %q, want last token", rows[0].Fields[FieldAmount])
	}
}

func TestPDFTextDateLineWithoutAmountWarns(t *testing.T) {
	sidecar := writeSidecar(t, ""+
		"15.03.2024 Wertstellung siehe unten\n"+
		"16.03.2024 Miete -800,00\n")
	src := &PDFTextSource{TextPath: sidecar, Profile: pdfProfile()}
	rows, warnings := collect(t, src)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want one amount warning", warnings)
	}
}

func TestPDFTextMissingSidecar(t *testing.T) {
	src := &PDFTextSource{TextPath: filepath.Join(t.TempDir(), "gone.txt"), Profile: pdfProfile()}
	_, err := src.Each(t.Context(), func(RawRow) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing sidecar")
	}
}
