package notice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
)

func generated(t *testing.T) (*Generator, uuid.UUID) {
	t.Helper()
	tx := mkTx("case-1", "DE11", "ACME GmbH", "-100.00", 1)
	g, _, ids := testGenerator(t, tx)
	notices, err := g.Generate(context.Background(), "case-1", ids)
	if err != nil {
		t.Fatal(err)
	}
	return g, notices[0].ID
}

func TestLifecycleForwardOnly(t *testing.T) {
	g, id := generated(t)
	ctx := context.Background()

	n, err := g.Accept(ctx, id)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if n.Status != constants.NoticeAccepted {
		t.Fatalf("status = %s, want ACCEPTED", n.Status)
	}

	n, err = g.Send(ctx, id)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if n.Status != constants.NoticeSent {
		t.Fatalf("status = %s, want SENT", n.Status)
	}
}

func TestLifecycleSkippingStepFails(t *testing.T) {
	g, id := generated(t)

	_, err := g.Send(context.Background(), id)
	if !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("Send on GENERATED: err = %v, want ErrInvalidTransition", err)
	}

	// the failed call must not have moved the notice
	n, err := g.notices.GetByID(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if n.Status != constants.NoticeGenerated {
		t.Errorf("status = %s, want GENERATED untouched", n.Status)
	}
}

func TestLifecycleNoRepeatOrRewind(t *testing.T) {
	g, id := generated(t)
	ctx := context.Background()

	if _, err := g.Accept(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Accept(ctx, id); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("second Accept: err = %v, want ErrInvalidTransition", err)
	}

	if _, err := g.Send(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Accept(ctx, id); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("Accept after SENT: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := g.Send(ctx, id); !errors.Is(err, common.ErrInvalidTransition) {
		t.Errorf("second Send: err = %v, want ErrInvalidTransition", err)
	}
}

func TestLifecycleUnknownNotice(t *testing.T) {
	g, _ := generated(t)
	if _, err := g.Accept(context.Background(), uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
