package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

func tx() *entity.Transaction {
	return &entity.Transaction{
		CaseID:           "case-1",
		DocumentID:       uuid.New(),
		SourceAccount:    "DE1234567890",
		RecipientAccount: "DE9876543210",
		RecipientName:    "ACME GmbH",
		Amount:           decimal.RequireFromString("-1234.56"),
		Currency:         "EUR",
		Description:      "Rechnung 4711",
		TxDate:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestHashDeterministic(t *testing.T) {
	a, b := tx(), tx()
	if Hash(a) != Hash(b) {
		t.Error("identical content must hash identically")
	}
	if len(Hash(a)) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(Hash(a)))
	}
}

func TestHashIgnoresDateAndDocument(t *testing.T) {
	a, b := tx(), tx()
	b.TxDate = b.TxDate.AddDate(0, 0, 7)
	b.DocumentID = uuid.New()
	b.ID = uuid.New()
	if Hash(a) != Hash(b) {
		t.Error("date and document identity must not affect the hash")
	}
}

func TestHashNormalizesCaseAndWhitespace(t *testing.T) {
	a, b := tx(), tx()
	b.RecipientName = "  acme   GMBH "
	b.Description = "rechnung\t4711"
	if Hash(a) != Hash(b) {
		t.Error("case and whitespace variants must hash identically")
	}
}

func TestHashSensitiveToContent(t *testing.T) {
	base := Hash(tx())

	amount := tx()
	amount.Amount = decimal.RequireFromString("-1234.57")
	if Hash(amount) == base {
		t.Error("amount change must change the hash")
	}

	desc := tx()
	desc.Description = "Rechnung 4712"
	if Hash(desc) == base {
		t.Error("description change must change the hash")
	}

	rcp := tx()
	rcp.RecipientAccount = "DE0000000000"
	if Hash(rcp) == base {
		t.Error("recipient change must change the hash")
	}
}

func TestHashEmptyOptionalFields(t *testing.T) {
	// rows with empty description and recipient name still hash on the rest
	a, b := tx(), tx()
	a.RecipientName, a.Description = "", ""
	b.RecipientName, b.Description = "", ""
	if Hash(a) != Hash(b) {
		t.Error("sparse rows must still hash deterministically")
	}
	if Hash(a) == Hash(tx()) {
		t.Error("clearing fields must change the hash")
	}
}

type fakeStore struct {
	seen map[string]bool
}

func (f *fakeStore) InsertIfAbsent(_ context.Context, t *entity.Transaction) (bool, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	key := t.CaseID + "|" + t.TxHash
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func TestApplySkipsDuplicates(t *testing.T) {
	d := New(&fakeStore{}, nil)
	ctx := context.Background()

	first := tx()
	inserted, err := d.Apply(ctx, first)
	if err != nil || !inserted {
		t.Fatalf("first Apply = (%v, %v), want inserted", inserted, err)
	}
	if first.TxHash == "" {
		t.Fatal("Apply must set TxHash")
	}

	// same content on a later date from another upload
	again := tx()
	again.TxDate = again.TxDate.AddDate(0, 0, 1)
	again.DocumentID = uuid.New()
	inserted, err = d.Apply(ctx, again)
	if err != nil {
		t.Fatal(err)
	}
	if inserted {
		t.Error("re-upload of same content must be a duplicate")
	}

	// same content under a different case inserts fine
	other := tx()
	other.CaseID = "case-2"
	inserted, err = d.Apply(ctx, other)
	if err != nil || !inserted {
		t.Errorf("other case Apply = (%v, %v), want inserted", inserted, err)
	}
}
