package organizer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kiro/internal/classify"
	"kiro/internal/config"
	"kiro/internal/fileutil"
	"kiro/internal/logging"
	"kiro/internal/report"
)

// Startup failures surfaced by the run-mode drivers.
var (
	ErrSourceMissing    = errors.New("source directory does not exist")
	ErrWatchUnavailable = errors.New("filesystem notifications unavailable")
	ErrAlreadyRunning   = errors.New("another kiro instance is already watching")
)

const (
	// archiveSubdir is the fixed hierarchy under the target root.
	archiveSubdir = "Screenshots"
	monthLayout   = "2006-01"
	suffixLayout  = "20060102_150405"
)

// Stats counts per-run outcomes. Counters are touched only from the single
// active processing path, so they need no synchronization.
type Stats struct {
	Moved  int
	Errors int
}

// Organizer moves classified screenshots into the archive for one run.
type Organizer struct {
	cfg      *config.Config
	logger   *slog.Logger
	reporter report.Reporter

	// Replaceable so tests can pin timestamps.
	now          func() time.Time
	creationTime func(string, os.FileInfo) time.Time

	stats Stats
}

// New constructs an organizer. A nil reporter discards console output.
func New(cfg *config.Config, logger *slog.Logger, reporter report.Reporter) *Organizer {
	if reporter == nil {
		reporter = report.Discard()
	}
	return &Organizer{
		cfg:          cfg,
		logger:       logging.NewComponentLogger(logger, "organizer"),
		reporter:     reporter,
		now:          time.Now,
		creationTime: fileutil.CreationTime,
	}
}

// Stats returns a copy of the run counters.
func (o *Organizer) Stats() Stats {
	return o.stats
}

// Process evaluates one candidate path and, when it is an eligible
// screenshot image, moves it into the month folder under the archive root.
// It reports whether the file was handled. Ineligible files return false
// with no side effects; failures after classification are absorbed here.
func (o *Organizer) Process(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	name := filepath.Base(path)
	if !classify.EligibleExtension(name) || !classify.IsScreenshot(name) {
		return false
	}

	created := o.creationTime(path, info)
	month := created.Format(monthLayout)
	targetDir := filepath.Join(o.cfg.Paths.TargetDir, archiveSubdir, month)
	destination := o.uniqueDestination(targetDir, name)

	if o.cfg.Organizer.DryRun {
		o.reporter.Warning("[DRY-RUN] Would move: %s -> %s", name, month)
		o.logger.Info("dry-run, move skipped",
			logging.String("file", name),
			logging.String("month", month),
		)
		return true
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		o.fail(name, "create month folder", err)
		return false
	}
	if err := fileutil.MoveFile(path, destination); err != nil {
		o.fail(name, "move file", err)
		return false
	}

	o.stats.Moved++
	o.reporter.Success("Moved: %s -> %s", name, month)
	o.logger.Info("moved screenshot",
		logging.String("file", name),
		logging.String("destination", destination),
	)
	return true
}

// uniqueDestination returns dir/name unless that path already exists, in
// which case the current wall-clock timestamp is inserted between the stem
// and the extension. The alternate name is not re-checked: a same-second
// collision on the same stem is accepted rather than retried.
func (o *Organizer) uniqueDestination(dir, name string) string {
	destination := filepath.Join(dir, name)
	if _, err := os.Stat(destination); err != nil {
		return destination
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, o.now().Format(suffixLayout), ext))
}

func (o *Organizer) fail(name, operation string, err error) {
	o.stats.Errors++
	o.reporter.Error("Error processing %s: %v", name, err)
	o.logger.Error("processing failed",
		logging.String("file", name),
		logging.String("operation", operation),
		logging.Error(err),
	)
}
