package config

import (
	"os"
	"path/filepath"
)

const (
	defaultLogDir          = "~/.local/share/kiro/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultDebounceSeconds = 1
	defaultArchiveName     = "Kiro_Archive"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir(),
			TargetDir: defaultTargetDir(),
			LogDir:    defaultLogDir,
		},
		Organizer: Organizer{
			DryRun:          false,
			DebounceSeconds: defaultDebounceSeconds,
		},
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// defaultSourceDir finds the real desktop, preferring a cloud-synced OneDrive
// desktop when one exists.
func defaultSourceDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/Desktop"
	}
	onedrive := filepath.Join(home, "OneDrive", "Desktop")
	if info, err := os.Stat(onedrive); err == nil && info.IsDir() {
		return onedrive
	}
	return filepath.Join(home, "Desktop")
}

func defaultTargetDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/Documents/" + defaultArchiveName
	}
	return filepath.Join(home, "Documents", defaultArchiveName)
}
