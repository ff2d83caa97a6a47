package fileutil

import (
	"os"
	"time"
)

// CreationTime returns the most trustworthy creation timestamp available for
// path: the true birth time where the platform and filesystem expose one,
// otherwise the last-modification time. A missing capability or a probe
// failure is not an error; the fallback is silent.
func CreationTime(path string, info os.FileInfo) time.Time {
	if born, ok := birthTime(path, info); ok && !born.IsZero() {
		return born
	}
	return info.ModTime()
}
