package pipeline

import (
	"context"
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

// gatedDocs parks the worker inside GetByID until released, so tests can
// fill the queue behind it.
type gatedDocs struct {
	started chan struct{}
	release chan struct{}
}

func (g *gatedDocs) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	g.started <- struct{}{}
	<-g.release
	return nil, common.ErrNotFound
}

func (g *gatedDocs) SetFormat(context.Context, uuid.UUID, constants.Format, constants.OCRStatus) error {
	return nil
}

func (g *gatedDocs) MarkProcessed(context.Context, uuid.UUID) error { return nil }

func gatedQueue(docs *gatedDocs, opts ...QueueOption) *Queue {
	proc := NewProcessor(docs, detect.New(0, nil), profile.NewRegistry(nil), dedup.New(&fakeTxStore{}, nil), nil)
	return NewQueue(proc, nil, opts...)
}

func TestShutdownWithBlockedEnqueue(t *testing.T) {
	docs := &gatedDocs{started: make(chan struct{}, 4), release: make(chan struct{})}
	q := gatedQueue(docs, WithWorkers(1), WithQueueSize(1))
	ctx := context.Background()

	if err := q.Enqueue(ctx, Job{DocumentID: uuid.New(), Profile: "p"}); err != nil {
		t.Fatal(err)
	}
	<-docs.started // worker is parked; the buffer is free again
	if err := q.Enqueue(ctx, Job{DocumentID: uuid.New(), Profile: "p"}); err != nil {
		t.Fatal(err)
	}

	// third job has nowhere to go and blocks
	enqDone := make(chan error, 1)
	go func() { enqDone <- q.Enqueue(ctx, Job{DocumentID: uuid.New(), Profile: "p"}) }()
	time.Sleep(50 * time.Millisecond)

	sdDone := make(chan struct{})
	go func() {
		sdCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		q.Shutdown(sdCtx)
		close(sdDone)
	}()

	select {
	case err := <-enqDone:
		if err != nil {
			t.Fatalf("blocked Enqueue: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue still blocked after Shutdown began")
	}

	close(docs.release)
	select {
	case <-sdDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown deadlocked")
	}
}

func TestEnqueueAfterShutdown(t *testing.T) {
	docs := &gatedDocs{started: make(chan struct{}, 1), release: make(chan struct{})}
	close(docs.release)
	q := gatedQueue(docs, WithWorkers(1))

	q.Shutdown(context.Background())
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New(), Profile: "p"}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
}

func TestEnqueueHonorsContext(t *testing.T) {
	docs := &gatedDocs{started: make(chan struct{}, 4), release: make(chan struct{})}
	q := gatedQueue(docs, WithWorkers(1), WithQueueSize(1))
	t.Cleanup(func() { q.Shutdown(context.Background()) })
	t.Cleanup(func() { close(docs.release) })

	bg := context.Background()
	if err := q.Enqueue(bg, Job{DocumentID: uuid.New(), Profile: "p"}); err != nil {
		t.Fatal(err)
	}
	<-docs.started
	if err := q.Enqueue(bg, Job{DocumentID: uuid.New(), Profile: "p"}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(bg, 50*time.Millisecond)
	defer cancel()
	if err := q.Enqueue(ctx, Job{DocumentID: uuid.New(), Profile: "p"}); err != context.DeadlineExceeded {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}
