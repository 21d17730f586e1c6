package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/dedup"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/detect"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func (f *fakeDocs) add(d *entity.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.docs == nil {
		f.docs = map[uuid.UUID]*entity.Document{}
	}
	f.docs[d.ID] = d
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *d
	return &c, nil
}

func (f *fakeDocs) SetFormat(_ context.Context, id uuid.UUID, format constants.Format, ocrStatus constants.OCRStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[id].Format = format
	f.docs[id].OCRStatus = ocrStatus
	return nil
}

func (f *fakeDocs) MarkProcessed(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.docs[id].ProcessedAt = &now
	return nil
}

type fakeTxStore struct {
	mu   sync.Mutex
	seen map[string]bool
	rows []*entity.Transaction
}

func (f *fakeTxStore) InsertIfAbsent(_ context.Context, t *entity.Transaction) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	key := t.CaseID + "|" + t.TxHash
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	c := *t
	f.rows = append(f.rows, &c)
	return true, nil
}

func testProcessor(t *testing.T) (*Processor, *fakeDocs, *fakeTxStore) {
	t.Helper()
	docs := &fakeDocs{}
	txs := &fakeTxStore{}
	profiles := profile.NewRegistry(nil)
	profiles.Put(&profile.Profile{
		Name:         "bank_csv",
		HasHeader:    true,
		DateOrder:    "dmy",
		DecimalComma: true,
		Columns: profile.Columns{
			RecipientName: profile.Column{Header: "Empfaenger"},
			Amount:        profile.Column{Header: "Betrag"},
			Description:   profile.Column{Header: "Zweck"},
			Date:          profile.Column{Header: "Datum"},
		},
	})
	p := NewProcessor(docs, detect.New(0, nil), profiles, dedup.New(txs, nil), nil)
	return p, docs, txs
}

func addCSV(t *testing.T, docs *fakeDocs, content string) uuid.UUID {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := &entity.Document{
		ID:       uuid.New(),
		CaseID:   "case-1",
		FileName: "statement.csv",
		FilePath: path,
	}
	docs.add(doc)
	return doc.ID
}

const statementCSV = "" +
	"Datum;Empfaenger;Zweck;Betrag\n" +
	"15.03.2024;ACME GmbH;Rechnung 4711;-1.234,56\n" +
	"15.03.2024;ACME GmbH;Rechnung 4711;-1.234,56\n" + // intra-file duplicate
	"16.03.2024;Beta AG;Miete;-800,00\n"

func TestExtractAndDedup(t *testing.T) {
	p, docs, txs := testProcessor(t)
	id := addCSV(t, docs, statementCSV)

	res, err := p.ExtractAndDedup(context.Background(), id, "bank_csv")
	if err != nil {
		t.Fatalf("ExtractAndDedup: %v", err)
	}
	if res.Format != constants.FormatCSV {
		t.Errorf("format = %s", res.Format)
	}
	if res.Inserted != 2 || res.Duplicates != 1 || res.Skipped != 0 {
		t.Fatalf("result = %+v, want 2 inserted, 1 duplicate", res)
	}
	if len(txs.rows) != 2 {
		t.Fatalf("stored rows = %d", len(txs.rows))
	}

	d, _ := docs.GetByID(context.Background(), id)
	if d.ProcessedAt == nil {
		t.Error("document not marked processed")
	}
	if d.Format != constants.FormatCSV {
		t.Error("detected format not persisted")
	}
}

func TestExtractAndDedupIdempotent(t *testing.T) {
	p, docs, txs := testProcessor(t)
	id := addCSV(t, docs, statementCSV)
	ctx := context.Background()

	if _, err := p.ExtractAndDedup(ctx, id, "bank_csv"); err != nil {
		t.Fatal(err)
	}
	res, err := p.ExtractAndDedup(ctx, id, "bank_csv")
	if err != nil {
		t.Fatal(err)
	}
	if res.Inserted != 0 || res.Duplicates != 3 {
		t.Fatalf("second run = %+v, want 0 inserted 3 duplicates", res)
	}
	if len(txs.rows) != 2 {
		t.Errorf("stored rows = %d after rerun, want 2", len(txs.rows))
	}
}

func TestExtractAndDedupSkipsMalformedRows(t *testing.T) {
	p, docs, _ := testProcessor(t)
	id := addCSV(t, docs, ""+
		"Datum;Empfaenger;Zweck;Betrag\n"+
		"bald;ACME GmbH;kaputtes Datum;-1,00\n"+
		"16.03.2024;Beta AG;Miete;-800,00\n")

	res, err := p.ExtractAndDedup(context.Background(), id, "bank_csv")
	if err != nil {
		t.Fatal(err)
	}
	if res.Inserted != 1 || res.Skipped != 1 {
		t.Fatalf("result = %+v, want 1 inserted 1 skipped", res)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warnings = %v", res.Warnings)
	}
}

func TestExtractAndDedupScanNeedsOCRFirst(t *testing.T) {
	p, docs, _ := testProcessor(t)
	doc := &entity.Document{
		ID:        uuid.New(),
		CaseID:    "case-1",
		FilePath:  "scan.pdf",
		Format:    constants.FormatPDFScan,
		OCRStatus: constants.OCRRequired,
	}
	docs.add(doc)

	_, err := p.ExtractAndDedup(context.Background(), doc.ID, "bank_csv")
	if !errors.Is(err, common.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestExtractAndDedupUnknownProfile(t *testing.T) {
	p, docs, _ := testProcessor(t)
	id := addCSV(t, docs, statementCSV)

	_, err := p.ExtractAndDedup(context.Background(), id, "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
