package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatalf("expected missing config file, got exists for %s", path)
	}
	if cfg.Organizer.DebounceSeconds != defaultDebounceSeconds {
		t.Errorf("debounce = %d, want %d", cfg.Organizer.DebounceSeconds, defaultDebounceSeconds)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("unexpected log defaults: %q %q", cfg.LogLevel, cfg.LogFormat)
	}
	if !filepath.IsAbs(cfg.Paths.SourceDir) || !filepath.IsAbs(cfg.Paths.TargetDir) {
		t.Errorf("paths not absolute: %q %q", cfg.Paths.SourceDir, cfg.Paths.TargetDir)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	body := `
log_level = "DEBUG"

[paths]
source_dir = "~/shots-inbox"
target_dir = "~/shots-archive"
log_dir = "~/shots-logs"

[organizer]
dry_run = true
debounce_seconds = 3
`
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, exists, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if !exists || path != configPath {
		t.Fatalf("expected existing config at %s, got %s (exists=%v)", configPath, path, exists)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "shots-inbox"); cfg.Paths.SourceDir != want {
		t.Errorf("source = %q, want %q", cfg.Paths.SourceDir, want)
	}
	if !cfg.Organizer.DryRun {
		t.Error("expected dry_run to be set")
	}
	if cfg.DebounceInterval() != 3*time.Second {
		t.Errorf("debounce interval = %v, want 3s", cfg.DebounceInterval())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want lowercased debug", cfg.LogLevel)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"equal dirs", func(c *Config) { c.Paths.TargetDir = c.Paths.SourceDir }, "must differ"},
		{"negative debounce", func(c *Config) { c.Organizer.DebounceSeconds = -1 }, "debounce_seconds"},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatal(err)
			}
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	got, err := ExpandPath("~/Desktop")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "Desktop"); got != want {
		t.Errorf("ExpandPath(~/Desktop) = %q, want %q", got, want)
	}

	got, err = ExpandPath("relative/dir")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[organizer]") {
		t.Fatalf("sample config missing organizer section:\n%s", data)
	}
}
