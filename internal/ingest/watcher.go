package ingest

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
)

// WatchConfig configures the intake watcher. The intake directory is laid
// out as <root>/<case_id>/<statement file>; the first path element below
// root names the case.
type WatchConfig struct {
	Root        string
	InitialScan bool          // emit files already present at startup
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// Watch emits absolute paths of statement files appearing under the intake
// root, including in case directories created after startup. The channel
// closes when ctx is done.
func Watch(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, error) {
	if cfg.Root == "" {
		return nil, errors.New("intake root is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	evCh := make(chan string, 256)
	err = filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return w.Add(path)
		}
		if cfg.InitialScan && allowedPath(path) {
			select {
			case evCh <- path:
			default:
				logger.Warn("intake event dropped, channel full", "path", path)
			}
		}
		return nil
	})
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	go func() {
		defer close(evCh)
		defer w.Close()

		// debounce runs entirely on this goroutine: pending and the timer
		// are only ever touched between selects, so no locking is needed
		var timer *time.Timer
		var fire <-chan time.Time
		pending := map[string]struct{}{}
		flush := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
					logger.Warn("intake event dropped, channel full", "path", p)
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-fire:
				fire = nil
				flush()
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op&fsnotify.Create != 0 {
					// a new case directory must be watched too; Add on a
					// plain file fails and that is fine
					_ = w.Add(e.Name)
				}
				if allowedPath(e.Name) && e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer == nil {
							timer = time.NewTimer(cfg.Debounce)
						} else {
							if !timer.Stop() && fire != nil {
								<-timer.C
							}
							timer.Reset(cfg.Debounce)
						}
						fire = timer.C
					} else {
						flush()
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("intake watcher error", "error", err)
			}
		}
	}()
	return evCh, nil
}

// RunIntake consumes watcher events and registers each file under the case
// named by its directory. Files dropped directly into the root have no case
// and are skipped.
func RunIntake(ctx context.Context, ingestor *FSIngestor, root string, events <-chan string, logger *slog.Logger) {
	for path := range events {
		caseID := caseIDFor(root, path)
		if caseID == "" {
			logger.Warn("intake file outside a case directory", "path", path)
			continue
		}
		if _, err := ingestor.IngestFile(ctx, caseID, path); err != nil {
			logger.Error("intake registration failed", "case_id", caseID, "path", path, "error", err)
		}
	}
}

func caseIDFor(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[0]
}

func allowedPath(path string) bool {
	_, ok := constants.AllowedExtensions[constants.ExtOf(path)]
	return ok
}
