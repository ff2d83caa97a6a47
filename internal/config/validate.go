package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

// Validate checks normalized settings for values the run modes cannot work
// with. It does not touch the filesystem; existence of the source directory
// is a run-mode concern.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		return fmt.Errorf("paths.source_dir: must not be empty")
	}
	if strings.TrimSpace(c.Paths.TargetDir) == "" {
		return fmt.Errorf("paths.target_dir: must not be empty")
	}
	if c.Paths.SourceDir == c.Paths.TargetDir {
		return fmt.Errorf("paths: source_dir and target_dir must differ")
	}
	if c.Organizer.DebounceSeconds < 0 {
		return fmt.Errorf("organizer.debounce_seconds: must not be negative")
	}
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	if _, ok := validLogFormats[c.LogFormat]; !ok {
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	return nil
}
