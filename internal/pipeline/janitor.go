package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// StaleSweeper fails OCR jobs whose heartbeat is older than a cutoff.
type StaleSweeper interface {
	SweepStaleOCR(ctx context.Context, maxAge time.Duration) (int, error)
}

// Janitor periodically fails orphaned ocr_running documents, e.g. jobs lost
// to a crashed process. Without it a crash would leave documents stuck in
// ocr_running forever, blocking any retry.
type Janitor struct {
	sweeper  StaleSweeper
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewJanitor(sweeper StaleSweeper, maxAge time.Duration, logger *slog.Logger) *Janitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Janitor{
		sweeper:  sweeper,
		maxAge:   maxAge,
		schedule: "@every 5m",
		cron:     cron.New(),
		logger:   logger,
	}
}

func (j *Janitor) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("janitor started", "schedule", j.schedule, "max_age", j.maxAge)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.sweeper.SweepStaleOCR(ctx, j.maxAge)
	if err != nil {
		j.logger.Error("stale ocr sweep failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.Warn("failed stale ocr jobs", "count", n, "max_age", j.maxAge)
	}
}
