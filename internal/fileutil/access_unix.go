//go:build unix

package fileutil

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CheckReadable verifies the process can enter and list the directory before
// a long-lived watch is established on it.
func CheckReadable(path string) error {
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}
	return nil
}
