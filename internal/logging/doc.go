// Package logging assembles the structured slog loggers used across Kiro.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so every component emits log lines
// with the same shape. A no-op logger is provided for tests and wiring code
// that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
