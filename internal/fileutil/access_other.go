//go:build !unix

package fileutil

// CheckReadable is a no-op where access(2) is unavailable; the watcher
// surfaces permission problems on first use instead.
func CheckReadable(string) error {
	return nil
}
