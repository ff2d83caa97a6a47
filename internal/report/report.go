// Package report owns the human-readable console surface. Core packages
// depend only on the Reporter interface; whether output is styled is decided
// once at startup from terminal capability, never inside the pipeline.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Reporter emits progress and result lines for one organizing run.
type Reporter interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// New returns a styled reporter when w is a terminal and a plain-text
// reporter otherwise.
func New(w io.Writer) Reporter {
	if Colorized(w) {
		return &styled{w: w}
	}
	return &plain{w: w}
}

// Discard returns a reporter that drops all output. Useful for tests and
// wiring code that has no console.
func Discard() Reporter {
	return &plain{w: io.Discard}
}

// Colorized reports whether w supports ANSI styling.
func Colorized(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type styled struct {
	w io.Writer
}

func (s *styled) Info(format string, args ...any) {
	fmt.Fprintln(s.w, text.FgCyan.Sprintf(format, args...))
}

func (s *styled) Success(format string, args ...any) {
	fmt.Fprintln(s.w, text.Colors{text.FgGreen, text.Bold}.Sprintf(format, args...))
}

func (s *styled) Warning(format string, args ...any) {
	fmt.Fprintln(s.w, text.FgYellow.Sprintf(format, args...))
}

func (s *styled) Error(format string, args ...any) {
	fmt.Fprintln(s.w, text.Colors{text.FgRed, text.Bold}.Sprintf(format, args...))
}

type plain struct {
	w io.Writer
}

func (p *plain) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *plain) Success(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *plain) Warning(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *plain) Error(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
