// Package match implements exact byte-sequence search over a stream.
//
// Input is searched line by line. When a read fills the whole working
// window without producing a line break the input is declared binary and
// searched as a sliding byte window instead, with a pattern-length-1
// overlap carried between refills so matches straddling a window
// boundary are still found. Matches are counted without overlap.
//
// The matcher understands only bytes; it does no pattern syntax and no
// encoding interpretation.
package match

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/anno-tools/anno/pkg/report"
)

// DefaultMaxColumns is the default maximum handled line length. A line
// longer than the window demotes the input to binary.
const DefaultMaxColumns = 64 * 1024

var (
	// ErrEmptyPattern indicates a zero-length search pattern.
	ErrEmptyPattern = errors.New("match: pattern empty")

	// ErrPatternTooLong indicates a pattern not shorter than the
	// maximum line length.
	ErrPatternTooLong = errors.New("match: pattern not less than maximum line length")
)

// config holds matcher configuration.
type config struct {
	maxColumns int
	color      bool
	countOnly  bool
}

// Option configures a Matcher.
type Option func(*config)

// MaxColumns sets the maximum handled line length in bytes.
func MaxColumns(n int) Option {
	return func(c *config) {
		c.maxColumns = n
	}
}

// Color enables bold highlighting of matched bytes in the line output.
func Color() Option {
	return func(c *config) {
		c.color = true
	}
}

// CountOnly suppresses line output; only the counters are maintained.
func CountOnly() Option {
	return func(c *config) {
		c.countOnly = true
	}
}

// Matcher searches a stream for exact occurrences of a byte pattern.
//
// Like the scanner, a Matcher is built once per run and fed every input
// source in order; the binary flag and the counters persist across
// sources. Not safe for concurrent use.
type Matcher struct {
	pattern []byte
	w       io.Writer

	color     bool
	countOnly bool

	buf    []byte
	filled int

	binary       bool
	matches      int
	matchedLines int
}

// New creates a Matcher that searches for pattern and writes matching
// lines to w.
func New(pattern []byte, w io.Writer, opts ...Option) (*Matcher, error) {
	cfg := &config{maxColumns: DefaultMaxColumns}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	if len(pattern) >= cfg.maxColumns {
		return nil, ErrPatternTooLong
	}

	return &Matcher{
		pattern:   pattern,
		w:         w,
		color:     cfg.color,
		countOnly: cfg.countOnly,
		buf:       make([]byte, cfg.maxColumns),
	}, nil
}

// Scan reads r to EOF, searching as it goes. In line mode a final line
// without a newline is searched at EOF; in binary mode the overlap is
// kept so a match spanning into the next source is still found.
func (m *Matcher) Scan(r io.Reader) error {
	for {
		n, err := r.Read(m.buf[m.filled:])
		if n > 0 {
			m.filled += n
			if werr := m.consume(m.filled == len(m.buf)); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("cannot read: %w", err)
		}
	}

	if !m.binary && m.filled > 0 {
		if err := m.scanLine(m.buf[:m.filled]); err != nil {
			return err
		}
		m.filled = 0
	}
	return nil
}

// Matches reports the total number of non-overlapping matches so far.
func (m *Matcher) Matches() int { return m.matches }

// MatchedLines reports how many lines contained at least one match.
// Meaningless once the input has been declared binary.
func (m *Matcher) MatchedLines() int { return m.matchedLines }

// Binary reports whether the input was demoted to binary search.
func (m *Matcher) Binary() bool { return m.binary }

// Report prints the summary the search tools show after scanning.
func (m *Matcher) Report(r *report.Reporter) {
	if m.binary && m.matches > 0 && !m.countOnly {
		r.Infof("binary file matches\n")
	}
	if m.countOnly {
		r.Infof("%d matches\n", m.matches)
		if !m.binary {
			r.Infof("%d lines match\n", m.matchedLines)
		}
	}
}

// consume processes whatever complete lines the window holds. force
// means the window is full; with no line break in a full window the
// input cannot be line-structured, so search falls back to binary mode.
func (m *Matcher) consume(force bool) error {
	if m.binary {
		return m.consumeBinary()
	}

	consumed := 0
	for {
		idx := bytes.IndexByte(m.buf[consumed:m.filled], '\n')
		if idx < 0 {
			break
		}
		if err := m.scanLine(m.buf[consumed : consumed+idx+1]); err != nil {
			return err
		}
		consumed += idx + 1
	}
	if consumed > 0 {
		copy(m.buf, m.buf[consumed:m.filled])
		m.filled -= consumed
		return nil
	}

	if force {
		m.binary = true
		return m.consumeBinary()
	}
	return nil
}

// consumeBinary searches the whole window and keeps a pattern-length-1
// overlap for the next refill. The overlap is too short to hold a full
// match, so nothing is counted twice.
func (m *Matcher) consumeBinary() error {
	if m.filled < len(m.pattern) {
		return nil
	}
	if err := m.scanLine(m.buf[:m.filled]); err != nil {
		return err
	}
	keep := len(m.pattern) - 1
	copy(m.buf, m.buf[m.filled-keep:m.filled])
	m.filled = keep
	return nil
}

// scanLine counts and prints the matches within one line (or, in binary
// mode, one window).
func (m *Matcher) scanLine(line []byte) error {
	matched := false
	prev := 0
	start := 0
	for len(line)-start >= len(m.pattern) {
		idx := bytes.Index(line[start:], m.pattern)
		if idx < 0 {
			break
		}
		at := start + idx
		if err := m.writeSegment(line[prev:at]); err != nil {
			return err
		}
		m.matches++
		matched = true
		prev = at + len(m.pattern)
		start = prev
	}
	if matched {
		if err := m.writeLine(line); err != nil {
			return err
		}
		if err := m.writeTail(line[prev:]); err != nil {
			return err
		}
		m.matchedLines++
	}
	return nil
}

// writeSegment emits the unmatched prefix followed by the match in bold.
// Active only for colored line output.
func (m *Matcher) writeSegment(prefix []byte) error {
	if m.binary || m.countOnly || !m.color {
		return nil
	}
	if len(prefix) > 0 {
		if _, err := m.w.Write(prefix); err != nil {
			return fmt.Errorf("cannot write: %w", err)
		}
	}
	if _, err := fmt.Fprintf(m.w, "%s%s%s", report.Bold, m.pattern, report.Reset); err != nil {
		return fmt.Errorf("cannot write: %w", err)
	}
	return nil
}

// writeLine emits the whole matched line. Active only for plain line
// output.
func (m *Matcher) writeLine(line []byte) error {
	if m.binary || m.countOnly || m.color {
		return nil
	}
	if _, err := m.w.Write(line); err != nil {
		return fmt.Errorf("cannot write: %w", err)
	}
	return nil
}

// writeTail emits the remainder of a matched line after its last match.
// Active only for colored line output.
func (m *Matcher) writeTail(tail []byte) error {
	if m.binary || m.countOnly || !m.color {
		return nil
	}
	if _, err := m.w.Write(tail); err != nil {
		return fmt.Errorf("cannot write: %w", err)
	}
	return nil
}
