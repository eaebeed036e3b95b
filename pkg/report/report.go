// Package report provides the colored stderr reporting shared by the
// anno tools: severity-colored printf helpers and the mapping from an
// operational error to the process exit code.
package report

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// ANSI escape codes used across the tool suite. Highlighting of matched
// bytes in search output uses Bold/Reset directly.
const (
	fgRed    = "\x1b[31m"
	fgGreen  = "\x1b[32m"
	fgYellow = "\x1b[33m"
	fgReset  = "\x1b[39m"

	Bold  = "\x1b[1m"
	Reset = "\x1b[0m"
)

// Reporter prints severity-colored messages. With color off the messages
// are printed bare. Write failures on the destination are ignored, as
// the destination is stderr.
type Reporter struct {
	w     io.Writer
	color bool
}

// New creates a Reporter writing to w.
func New(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// Infof prints an informational (green) message.
func (r *Reporter) Infof(format string, args ...any) {
	r.printf(fgGreen, format, args...)
}

// Warnf prints a warning (yellow) message.
func (r *Reporter) Warnf(format string, args ...any) {
	r.printf(fgYellow, format, args...)
}

// Errorf prints an error (red) message.
func (r *Reporter) Errorf(format string, args ...any) {
	r.printf(fgRed, format, args...)
}

func (r *Reporter) printf(color, format string, args ...any) {
	if r.color {
		fmt.Fprint(r.w, color)
	}
	fmt.Fprintf(r.w, format, args...)
	if r.color {
		fmt.Fprint(r.w, fgReset)
	}
}

// ExitCode derives a process exit status from an operational failure:
// the OS errno when one is in the error's chain, else 1. A nil error is 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}
