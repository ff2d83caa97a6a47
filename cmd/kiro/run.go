package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"kiro/internal/config"
	"kiro/internal/logging"
	"kiro/internal/organizer"
	"kiro/internal/report"
	"kiro/internal/scanner"
	"kiro/internal/watcher"
)

func runOrganizer(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	reporter := report.New(cmd.OutOrStdout())
	org := organizer.New(cfg, logger, reporter)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if opts.watch {
		return watcher.New(cfg, org, reporter, logger).Run(ctx)
	}

	showProgress := report.Colorized(os.Stdout)
	stats, err := scanner.New(cfg, org, reporter, logger, showProgress).Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderSummary(stats))
	reporter.Success("Done. Moved: %d | Errors: %d", stats.Moved, stats.Errors)
	return nil
}

// loadConfig reads the config file and layers CLI flag overrides on top,
// re-validating the merged result.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if value := strings.TrimSpace(opts.source); value != "" {
		if cfg.Paths.SourceDir, err = config.ExpandPath(value); err != nil {
			return nil, fmt.Errorf("resolve --source: %w", err)
		}
	}
	if value := strings.TrimSpace(opts.target); value != "" {
		if cfg.Paths.TargetDir, err = config.ExpandPath(value); err != nil {
			return nil, fmt.Errorf("resolve --target: %w", err)
		}
	}
	if opts.dryRun {
		cfg.Organizer.DryRun = true
	}
	if value := strings.TrimSpace(opts.logLevel); value != "" {
		cfg.LogLevel = strings.ToLower(value)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
