package report

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"
)

func TestReporter_Color(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)
	r.Infof("%d lines\n", 3)
	want := "\x1b[32m3 lines\n\x1b[39m"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReporter_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	r.Warnf("careful\n")
	r.Errorf("broken\n")
	want := "careful\nbroken\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("nil: got %d, want 0", got)
	}
	if got := ExitCode(errors.New("plain")); got != 1 {
		t.Errorf("plain: got %d, want 1", got)
	}

	pathErr := &fs.PathError{Op: "open", Path: "nope", Err: syscall.ENOENT}
	wrapped := fmt.Errorf("cannot open file: %w", pathErr)
	if got := ExitCode(wrapped); got != int(syscall.ENOENT) {
		t.Errorf("wrapped errno: got %d, want %d", got, int(syscall.ENOENT))
	}
}
