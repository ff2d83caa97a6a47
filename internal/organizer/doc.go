// Package organizer implements the classify → resolve → move pipeline that
// relocates screenshot images into the month-keyed archive.
//
// Process handles exactly one candidate file and absorbs every per-file
// failure: the error is reported with the filename, the error counter is
// bumped, and the caller keeps going. Run-mode drivers (scanner, watcher)
// feed candidates in; startup-level failures are theirs to surface.
package organizer
