package normalize

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/extract"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		Name:            "test",
		HasHeader:       true,
		DateOrder:       "dmy",
		DecimalComma:    true,
		DefaultCurrency: "eur",
	}
}

func TestNormalizeRow(t *testing.T) {
	n := New(testProfile())
	docID := uuid.New()

	tx, err := n.Normalize(extract.RawRow{
		Line: 5,
		Fields: map[string]string{
			extract.FieldSourceAccount:    "de12 3456 7890",
			extract.FieldRecipientAccount: " de98 7654 3210 ",
			extract.FieldRecipientName:    "ACME GmbH",
			extract.FieldAmount:           "-1.234,56",
			extract.FieldDate:             "15.03.2024",
			extract.FieldDescription:      "  Rechnung   4711\n Teil 2 ",
		},
	}, "case-1", docID)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	if tx.CaseID != "case-1" || tx.DocumentID != docID {
		t.Errorf("identity fields wrong: %+v", tx)
	}
	if tx.SourceAccount != "DE1234567890" {
		t.Errorf("source account = %q", tx.SourceAccount)
	}
	if tx.RecipientAccount != "DE9876543210" {
		t.Errorf("recipient account = %q", tx.RecipientAccount)
	}
	if tx.Amount.StringFixed(2) != "-1234.56" {
		t.Errorf("amount = %s", tx.Amount.StringFixed(2))
	}
	if tx.TxDate.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("date = %s", tx.TxDate)
	}
	if tx.Currency != "EUR" {
		t.Errorf("currency = %q, want default EUR", tx.Currency)
	}
	if tx.Description != "Rechnung 4711 Teil 2" {
		t.Errorf("description = %q", tx.Description)
	}
}

func TestNormalizeRowErrors(t *testing.T) {
	n := New(testProfile())
	docID := uuid.New()

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"empty row", map[string]string{}},
		{"bad amount", map[string]string{
			extract.FieldAmount: "n/a",
			extract.FieldDate:   "15.03.2024",
		}},
		{"bad date", map[string]string{
			extract.FieldAmount: "12,00",
			extract.FieldDate:   "soon",
		}},
		{"missing amount", map[string]string{
			extract.FieldDate:        "15.03.2024",
			extract.FieldDescription: "no amount here",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.Normalize(extract.RawRow{Line: 3, Fields: tc.fields}, "case-1", docID)
			var re common.RowError
			if !errors.As(err, &re) {
				t.Fatalf("err = %v, want RowError", err)
			}
			if re.Row != 3 {
				t.Errorf("row = %d, want 3", re.Row)
			}
		})
	}
}

func TestNormalizeDashAccountMeansEmpty(t *testing.T) {
	n := New(testProfile())
	tx, err := n.Normalize(extract.RawRow{
		Line: 1,
		Fields: map[string]string{
			extract.FieldRecipientAccount: "-",
			extract.FieldRecipientName:    "Someone",
			extract.FieldAmount:           "10,00",
			extract.FieldDate:             "01.01.2024",
		},
	}, "case-1", uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if tx.RecipientAccount != "" {
		t.Errorf("recipient account = %q, want empty", tx.RecipientAccount)
	}
	if tx.Counterparty() != "Someone" {
		t.Errorf("counterparty = %q, want name fallback", tx.Counterparty())
	}
}
