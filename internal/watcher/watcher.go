// Package watcher runs the continuous organizing mode: it subscribes to
// file-creation notifications on the source directory and feeds new entries
// to the organizer after a debounce delay.
//
// Events are drained by a single worker so no two moves ever overlap; when
// the context is cancelled an in-flight move is allowed to complete before
// Run returns. A flock-guarded lock file keeps a second watching instance
// from racing the first over the same source directory.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"

	"kiro/internal/config"
	"kiro/internal/fileutil"
	"kiro/internal/logging"
	"kiro/internal/organizer"
	"kiro/internal/report"
)

// pendingBuffer gives the event loop slack while the worker sleeps through
// the debounce interval of earlier events.
const pendingBuffer = 64

// Watcher owns one continuous watch over the source directory.
type Watcher struct {
	cfg      *config.Config
	org      *organizer.Organizer
	reporter report.Reporter
	logger   *slog.Logger
	lock     *flock.Flock
	sleep    func(time.Duration)
}

// New constructs a watcher. The instance lock lives under the log directory.
func New(cfg *config.Config, org *organizer.Organizer, reporter report.Reporter, logger *slog.Logger) *Watcher {
	if reporter == nil {
		reporter = report.Discard()
	}
	return &Watcher{
		cfg:      cfg,
		org:      org,
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, "watcher"),
		lock:     flock.New(filepath.Join(cfg.Paths.LogDir, "kiro.lock")),
		sleep:    time.Sleep,
	}
}

// Run watches the source directory until ctx is cancelled. Startup failures
// (missing source, unavailable notification subsystem, a concurrent
// instance) return immediately; per-file failures never do.
func (w *Watcher) Run(ctx context.Context) error {
	source := w.cfg.Paths.SourceDir
	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("%w: %s", organizer.ErrSourceMissing, source)
	}
	if err := fileutil.CheckReadable(source); err != nil {
		return fmt.Errorf("source directory not readable: %w", err)
	}

	if err := os.MkdirAll(w.cfg.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("ensure lock directory: %w", err)
	}
	locked, err := w.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire watch lock: %w", err)
	}
	if !locked {
		return organizer.ErrAlreadyRunning
	}
	defer func() {
		if err := w.lock.Unlock(); err != nil {
			w.logger.Warn("release watch lock", logging.Error(err))
		}
	}()

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", organizer.ErrWatchUnavailable, err)
	}
	defer notifier.Close()

	if err := notifier.Add(source); err != nil {
		return fmt.Errorf("watch %s: %w", source, err)
	}

	w.reporter.Info("Kiro Watcher Active")
	w.reporter.Info("Watching: %s", source)
	w.reporter.Info("Target:   %s", w.cfg.Paths.TargetDir)
	w.reporter.Info("Press Ctrl+C to stop.")
	w.logger.Info("watch started",
		logging.String("source", source),
		logging.Duration("debounce", w.cfg.DebounceInterval()),
	)

	// Single worker: the debounce sleep and the move both happen here, so
	// event handling serializes behind prior handler invocations.
	pending := make(chan string, pendingBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for path := range pending {
			w.sleep(w.cfg.DebounceInterval())
			w.org.Process(path)
		}
	}()

	shutdown := func() {
		close(pending)
		<-done // let an in-flight move finish
		w.logger.Info("watch stopped")
	}

	for {
		select {
		case <-ctx.Done():
			shutdown()
			return nil
		case event, ok := <-notifier.Events:
			if !ok {
				shutdown()
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
				continue
			}
			select {
			case pending <- event.Name:
			case <-ctx.Done():
				shutdown()
				return nil
			}
		case err, ok := <-notifier.Errors:
			if !ok {
				shutdown()
				return nil
			}
			w.logger.Warn("watch error", logging.Error(err))
		}
	}
}
