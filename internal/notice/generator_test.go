package notice

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

type fakeTxStore struct {
	txs map[uuid.UUID]*entity.Transaction
}

func (f *fakeTxStore) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, id := range ids {
		if t, ok := f.txs[id]; ok {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeNoticeStore struct {
	notices map[uuid.UUID]*entity.Notice
}

func (f *fakeNoticeStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Notice, error) {
	n, ok := f.notices[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *n
	return &c, nil
}

func (f *fakeNoticeStore) ListByCase(_ context.Context, caseID string) ([]*entity.Notice, error) {
	var out []*entity.Notice
	for _, n := range f.notices {
		if n.CaseID == caseID {
			c := *n
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeNoticeStore) Create(_ context.Context, n *entity.Notice) (*entity.Notice, error) {
	if f.notices == nil {
		f.notices = map[uuid.UUID]*entity.Notice{}
	}
	c := *n
	c.ID = uuid.New()
	c.Status = constants.NoticeGenerated
	f.notices[c.ID] = &c
	out := c
	return &out, nil
}

func (f *fakeNoticeStore) UpdateStatusIf(_ context.Context, id uuid.UUID, from, to constants.NoticeStatus) (bool, error) {
	n, ok := f.notices[id]
	if !ok || n.Status != from {
		return false, nil
	}
	n.Status = to
	return true, nil
}

func mkTx(caseID, account, name string, amount string, day int) *entity.Transaction {
	return &entity.Transaction{
		ID:               uuid.New(),
		CaseID:           caseID,
		DocumentID:       uuid.New(),
		RecipientAccount: account,
		RecipientName:    name,
		Amount:           decimal.RequireFromString(amount),
		Currency:         "EUR",
		Description:      "desc",
		TxDate:           time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
	}
}

func testGenerator(t *testing.T, txs ...*entity.Transaction) (*Generator, *fakeNoticeStore, []uuid.UUID) {
	t.Helper()
	txStore := &fakeTxStore{txs: map[uuid.UUID]*entity.Transaction{}}
	ids := make([]uuid.UUID, len(txs))
	for i, tx := range txs {
		txStore.txs[tx.ID] = tx
		ids[i] = tx.ID
	}
	store := &fakeNoticeStore{}
	g := NewGenerator(store, txStore, t.TempDir(), "Treuhand Mueller", nil)
	return g, store, ids
}

func TestGenerateGroupsByCounterparty(t *testing.T) {
	a1 := mkTx("case-1", "DE11", "ACME GmbH", "-100.00", 2)
	a2 := mkTx("case-1", "DE11", "ACME GmbH", "-200.00", 1)
	b := mkTx("case-1", "DE22", "Beta AG", "-50.00", 3)
	g, _, ids := testGenerator(t, a1, a2, b)

	notices, err := g.Generate(context.Background(), "case-1", ids)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(notices) != 2 {
		t.Fatalf("notices = %d, want 2", len(notices))
	}

	byAccount := map[string]*entity.Notice{}
	for _, n := range notices {
		byAccount[n.CounterpartyAccount] = n
		if n.Status != constants.NoticeGenerated {
			t.Errorf("status = %s, want GENERATED", n.Status)
		}
		if _, err := os.Stat(n.FilePath); err != nil {
			t.Errorf("artifact missing: %v", err)
		}
	}
	acme := byAccount["DE11"]
	if acme == nil || len(acme.TransactionIDs) != 2 {
		t.Fatalf("ACME notice wrong: %+v", acme)
	}
	if !strings.Contains(acme.Content, "To: ACME GmbH") ||
		!strings.Contains(acme.Content, "From: Treuhand Mueller") {
		t.Errorf("content header wrong:\n%s", acme.Content)
	}
	// transactions are listed oldest first
	if strings.Index(acme.Content, "2024-03-01") > strings.Index(acme.Content, "2024-03-02") {
		t.Errorf("transactions not date ordered:\n%s", acme.Content)
	}
	if beta := byAccount["DE22"]; beta == nil || len(beta.TransactionIDs) != 1 {
		t.Fatalf("Beta notice wrong: %+v", beta)
	}
}

func TestGenerateFallsBackToName(t *testing.T) {
	// no account, name only: still groupable
	tx := mkTx("case-1", "", "Gamma e.K.", "-10.00", 1)
	g, _, ids := testGenerator(t, tx)

	notices, err := g.Generate(context.Background(), "case-1", ids)
	if err != nil {
		t.Fatal(err)
	}
	if len(notices) != 1 || notices[0].CounterpartyName != "Gamma e.K." {
		t.Fatalf("notices = %+v", notices)
	}
}

func TestGenerateRejections(t *testing.T) {
	grouped := mkTx("case-1", "DE11", "A", "-1.00", 1)
	gid := uuid.New()
	grouped.NoticeID = &gid

	tests := []struct {
		name    string
		tx      *entity.Transaction
		caseID  string
		wantErr error
	}{
		{"cross case", mkTx("case-2", "DE11", "A", "-1.00", 1), "case-1", common.ErrCrossCaseReference},
		{"already grouped", grouped, "case-1", common.ErrAlreadyGrouped},
		{"ungroupable", mkTx("case-1", "", "", "-1.00", 1), "case-1", common.ErrUngroupableTransaction},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, store, ids := testGenerator(t, tc.tx)
			_, err := g.Generate(context.Background(), tc.caseID, ids)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if len(store.notices) != 0 {
				t.Error("rejected call must not create notices")
			}
		})
	}
}

func TestGenerateUnknownTransaction(t *testing.T) {
	g, _, _ := testGenerator(t)
	_, err := g.Generate(context.Background(), "case-1", []uuid.UUID{uuid.New()})
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGenerateEmptySelection(t *testing.T) {
	g, _, _ := testGenerator(t)
	_, err := g.Generate(context.Background(), "case-1", nil)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
