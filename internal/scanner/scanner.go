// Package scanner drives the one-shot organizing pass: list the source
// directory, feed every regular file to the organizer, report a summary.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"kiro/internal/config"
	"kiro/internal/logging"
	"kiro/internal/organizer"
	"kiro/internal/report"
)

// Scanner walks the source directory exactly once, non-recursively.
type Scanner struct {
	cfg      *config.Config
	org      *organizer.Organizer
	reporter report.Reporter
	logger   *slog.Logger

	// progress is a startup capability flag: a live bar is only drawn when
	// the console supports it. The loop branches on the flag, never on the
	// presence of the progress library.
	progress bool
}

// New constructs a scanner. showProgress should reflect whether stdout is a
// terminal capable of rendering a progress bar.
func New(cfg *config.Config, org *organizer.Organizer, reporter report.Reporter, logger *slog.Logger, showProgress bool) *Scanner {
	if reporter == nil {
		reporter = report.Discard()
	}
	return &Scanner{
		cfg:      cfg,
		org:      org,
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, "scanner"),
		progress: showProgress,
	}
}

// Run lists the source directory and processes every regular file in order.
// A missing source directory aborts before any processing; per-file failures
// are absorbed by the organizer and only surface in the returned stats.
func (s *Scanner) Run(ctx context.Context) (organizer.Stats, error) {
	source := s.cfg.Paths.SourceDir
	entries, err := os.ReadDir(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return organizer.Stats{}, fmt.Errorf("%w: %s", organizer.ErrSourceMissing, source)
		}
		return organizer.Stats{}, fmt.Errorf("list source directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(source, entry.Name()))
		}
	}

	s.reporter.Info("Kiro is organizing %d files from: %s", len(files), source)
	s.logger.Info("scan started",
		logging.String("source", source),
		logging.Int("files", len(files)),
		logging.Bool("dry_run", s.cfg.Organizer.DryRun),
	)

	var bar *progressbar.ProgressBar
	if s.progress {
		bar = progressbar.Default(int64(len(files)), "Sorting")
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return s.org.Stats(), err
		}
		s.org.Process(path)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	stats := s.org.Stats()
	s.logger.Info("scan complete",
		logging.Int("moved", stats.Moved),
		logging.Int("errors", stats.Errors),
	)
	return stats, nil
}
