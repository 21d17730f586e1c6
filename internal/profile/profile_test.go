package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseJSON(t *testing.T) {
	raw := []byte(`{
		"name": "bank_json",
		"date_order": "dmy",
		"has_header": true,
		"decimal_comma": true,
		"default_currency": "EUR",
		"columns": {
			"amount": {"header": "Betrag"},
			"date": {"header": "Buchungstag"},
			"description": {"index": 2}
		}
	}`)
	p, err := ParseJSON(raw)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if p.Name != "bank_json" || !p.DecimalComma {
		t.Errorf("parsed = %+v", p)
	}
	if p.Columns.Description.Index == nil || *p.Columns.Description.Index != 2 {
		t.Errorf("description index = %v", p.Columns.Description.Index)
	}
}

func TestParseJSONRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing columns", `{"name":"x","date_order":"dmy"}`},
		{"bad date order", `{"name":"x","date_order":"moy","columns":{"amount":{"index":0},"date":{"index":1}}}`},
		{"negative index", `{"name":"x","date_order":"dmy","columns":{"amount":{"index":-1},"date":{"index":1}}}`},
		{"unknown top key", `{"name":"x","date_order":"dmy","surprise":1,"columns":{"amount":{"index":0},"date":{"index":1}}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseJSON([]byte(tc.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestResolveIndex(t *testing.T) {
	header := []string{"Buchungstag", " Betrag ", "Verwendungszweck"}

	if got := ResolveIndex(Column{Header: "betrag"}, header); got != 1 {
		t.Errorf("case-insensitive match = %d, want 1", got)
	}
	if got := ResolveIndex(Column{Header: "zweck"}, header); got != 2 {
		t.Errorf("fuzzy contains = %d, want 2", got)
	}
	if got := ResolveIndex(Column{Header: "Saldo"}, header); got != -1 {
		t.Errorf("missing header = %d, want -1", got)
	}
	three := 3
	if got := ResolveIndex(Column{Index: &three}, header); got != 3 {
		t.Errorf("explicit index = %d, want 3", got)
	}
	if got := ResolveIndex(Column{}, header); got != -1 {
		t.Errorf("unset column = %d, want -1", got)
	}
}

func TestRegistryLoadDir(t *testing.T) {
	dir := t.TempDir()
	good := `name: good
date_order: dmy
decimal_comma: true
columns:
  amount:
    header: Betrag
  date:
    header: Datum
`
	bad := `name: bad
date_order: sideways
columns:
  amount: {header: Betrag}
  date: {header: Datum}
`
	if err := os.WriteFile(filepath.Join(dir, "good.yaml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry(nil)
	if err := r.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if p := r.Get("good"); p == nil || p.Columns.Amount.Header != "Betrag" {
		t.Errorf("good profile = %+v", p)
	}
	if r.Get("bad") != nil {
		t.Error("invalid profile must be skipped")
	}
	if names := r.Names(); len(names) != 1 || names[0] != "good" {
		t.Errorf("names = %v", names)
	}
}

func TestRegistryAcceptsJSONProfile(t *testing.T) {
	raw := []byte(`{
		"name": "adhoc",
		"date_order": "ymd",
		"has_header": true,
		"decimal_comma": true,
		"columns": {
			"amount": {"index": 2},
			"date": {"index": 0}
		}
	}`)
	p, err := ParseJSON(raw)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	r := NewRegistry(nil)
	r.Put(p)
	if got := r.Get("adhoc"); got == nil || !got.DecimalComma {
		t.Fatalf("registered profile = %+v", got)
	}

	// re-registering under the same name replaces
	replacement := *p
	replacement.DecimalComma = false
	r.Put(&replacement)
	if r.Get("adhoc").DecimalComma {
		t.Error("replacement did not take effect")
	}
}

func TestRegistryMissingDir(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.LoadDir(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("missing dir must not error: %v", err)
	}
	if len(r.Names()) != 0 {
		t.Error("registry should be empty")
	}
}
