package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

func headerProfile() *profile.Profile {
	return &profile.Profile{
		Name:         "test",
		HasHeader:    true,
		DateOrder:    "dmy",
		DecimalComma: true,
		Columns: profile.Columns{
			RecipientName: profile.Column{Header: "Empfaenger"},
			Amount:        profile.Column{Header: "Betrag"},
			Description:   profile.Column{Header: "Verwendungszweck"},
			Date:          profile.Column{Header: "Buchungstag"},
		},
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func collect(t *testing.T, src RowSource) ([]RawRow, []string) {
	t.Helper()
	var rows []RawRow
	rowErrs, err := src.Each(context.Background(), func(r RawRow) error {
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	warnings := make([]string, len(rowErrs))
	for i, re := range rowErrs {
		warnings[i] = re.Error()
	}
	return rows, warnings
}

func TestCSVSemicolonDelimited(t *testing.T) {
	path := writeCSV(t, ""+
		"Buchungstag;Empfaenger;Verwendungszweck;Betrag\n"+
		"15.03.2024;ACME GmbH;Rechnung 4711;-1.234,56\n"+
		"16.03.2024;Beta AG;Miete;-800,00\n")

	rows, warnings := collect(t, &CSVSource{Path: path, Profile: headerProfile()})
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Fields[FieldRecipientName] != "ACME GmbH" {
		t.Errorf("recipient = %q", rows[0].Fields[FieldRecipientName])
	}
	if rows[0].Fields[FieldAmount] != "-1.234,56" {
		t.Errorf("amount = %q", rows[0].Fields[FieldAmount])
	}
	if rows[1].Fields[FieldDate] != "16.03.2024" {
		t.Errorf("date = %q", rows[1].Fields[FieldDate])
	}
}

func TestCSVCommaDelimitedWithBOM(t *testing.T) {
	path := writeCSV(t, "\xEF\xBB\xBF"+
		"Buchungstag,Empfaenger,Verwendungszweck,Betrag\n"+
		"15.03.2024,ACME GmbH,Rechnung,\"1234,56\"\n")

	rows, warnings := collect(t, &CSVSource{Path: path, Profile: headerProfile()})
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	// BOM must not glue itself onto the first header cell
	if rows[0].Fields[FieldDate] != "15.03.2024" {
		t.Errorf("date = %q", rows[0].Fields[FieldDate])
	}
}

func TestCSVSkipsEmptyRowsAndHonorsHeaderMismatch(t *testing.T) {
	path := writeCSV(t, ""+
		"Buchungstag;Empfaenger;Verwendungszweck;Betrag\n"+
		";;;\n"+
		"15.03.2024;ACME GmbH;Rechnung;-1,00\n")

	rows, warnings := collect(t, &CSVSource{Path: path, Profile: headerProfile()})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (blank row skipped)", len(rows))
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}

	// a file whose header has neither amount nor date column warns once
	bad := writeCSV(t, "a;b;c\n1;2;3\n")
	rows, warnings = collect(t, &CSVSource{Path: bad, Profile: headerProfile()})
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one header mismatch", warnings)
	}
	// with no columns resolved every mapped field is empty, so data rows
	// evaporate rather than produce garbage
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}

func TestCSVPositionalProfile(t *testing.T) {
	idx := func(i int) *int { return &i }
	p := &profile.Profile{
		Name:         "positional",
		HasHeader:    false,
		DateOrder:    "dmy",
		DecimalComma: true,
		Columns: profile.Columns{
			Date:          profile.Column{Index: idx(0)},
			Description:   profile.Column{Index: idx(1)},
			RecipientName: profile.Column{Index: idx(2)},
			Amount:        profile.Column{Index: idx(3)},
		},
	}
	path := writeCSV(t, "15.03.2024;Miete März;Vermieter;-800,00\n")

	rows, warnings := collect(t, &CSVSource{Path: path, Profile: p})
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Fields[FieldAmount] != "-800,00" {
		t.Errorf("amount = %q", rows[0].Fields[FieldAmount])
	}
	if rows[0].Fields[FieldRecipientName] != "Vermieter" {
		t.Errorf("recipient = %q", rows[0].Fields[FieldRecipientName])
	}
}
