package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"kiro/internal/config"
	"kiro/internal/logging"
	"kiro/internal/organizer"
	"kiro/internal/testsupport"
)

func newTestWatcher(t *testing.T, cfg *config.Config) *Watcher {
	t.Helper()
	org := organizer.New(cfg, logging.NewNop(), nil)
	w := New(cfg, org, nil, logging.NewNop())
	w.sleep = func(time.Duration) {}
	return w
}

func TestRunMissingSource(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	err := newTestWatcher(t, cfg).Run(context.Background())
	if !errors.Is(err, organizer.ErrSourceMissing) {
		t.Fatalf("err = %v, want ErrSourceMissing", err)
	}
}

func TestRunRejectsSecondInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.SourceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatal(err)
	}

	holder := flock.New(filepath.Join(cfg.Paths.LogDir, "kiro.lock"))
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("pre-lock failed: locked=%v err=%v", locked, err)
	}
	defer holder.Unlock()

	err = newTestWatcher(t, cfg).Run(context.Background())
	if !errors.Is(err, organizer.ErrAlreadyRunning) {
		t.Fatalf("err = %v, want ErrAlreadyRunning", err)
	}
}

func TestRunMovesCreatedFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.SourceDir, 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := newTestWatcher(t, cfg)
	runErr := make(chan error, 1)
	go func() {
		runErr <- w.Run(ctx)
	}()

	// Give the watcher a moment to register before creating the file.
	time.Sleep(200 * time.Millisecond)
	src := filepath.Join(cfg.Paths.SourceDir, "screenshot.png")
	testsupport.WriteFile(t, src, []byte("png"))

	deadline := time.After(5 * time.Second)
	for testsupport.Exists(t, src) {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for the watcher to move the file")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-runErr:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not shut down after cancellation")
	}

	archive := filepath.Join(cfg.Paths.TargetDir, "Screenshots")
	entries, err := os.ReadDir(archive)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one month folder under %s, err=%v", archive, err)
	}
}

func TestRunReleasesLockOnShutdown(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.SourceDir, 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := newTestWatcher(t, cfg)
	runErr := make(chan error, 1)
	go func() {
		runErr <- w.Run(ctx)
	}()
	time.Sleep(200 * time.Millisecond)
	cancel()
	if err := <-runErr; err != nil {
		t.Fatalf("Run returned %v", err)
	}

	holder := flock.New(filepath.Join(cfg.Paths.LogDir, "kiro.lock"))
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("lock should be free after shutdown: locked=%v err=%v", locked, err)
	}
	_ = holder.Unlock()
}
