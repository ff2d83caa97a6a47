//go:build linux

package fileutil

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime asks statx for the file's birth time. Not every filesystem
// records one; the mask tells us whether the field is populated.
func birthTime(path string, _ os.FileInfo) (time.Time, bool) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
