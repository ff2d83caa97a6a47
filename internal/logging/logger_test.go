package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "kiro.log")

	logger, err := New(Options{Level: "info", Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("scan complete", Int("moved", 2))

	data := readFile(t, logPath)
	if !strings.Contains(data, "scan complete") || !strings.Contains(data, "moved=2") {
		t.Fatalf("unexpected log contents: %s", data)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConsoleHandlerComponentAndGroups(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, level))

	logger = logger.With(String(FieldComponent, "organizer"))
	logger.Info("moved screenshot",
		String("file", "shot.png"),
		slog.Group("stats", Int("moved", 1)),
	)

	out := buf.String()
	for _, want := range []string{"INF", "[organizer]", "moved screenshot", "file=shot.png", "stats.moved=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleHandlerQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	logger.Info("moved", String("file", "Screenshot 2024-01-05.png"))

	if !strings.Contains(buf.String(), `file="Screenshot 2024-01-05.png"`) {
		t.Fatalf("expected quoted value, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NewNop()
	logger.Error("should vanish", Error(nil))

	component := NewComponentLogger(nil, "watcher")
	component.Info("also discarded")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
