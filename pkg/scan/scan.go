package scan

import (
	"fmt"
	"io"
)

// Scanner validates a byte stream and writes it back out with defective
// spans annotated.
//
// All scanning state lives in the Scanner: the working window with its
// cursors, the whitespace carry flag, and the currently open annotation
// Condition. Construct one per run and feed it every input source in
// order; state is intentionally not reset between sources.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	w io.Writer

	// Working window. buf[flushed:filled) is pending output, the region
	// above filled is free. The walk index is local to each decode pass.
	// Invariant: 0 <= flushed <= filled <= len(buf).
	buf     []byte
	flushed int
	filled  int

	// cond is the annotation currently open in the output.
	cond  Condition
	color bool

	// lastWS carries "the last non-CR byte was a space or tab" across
	// window refills and source boundaries.
	lastWS bool
}

// New creates a Scanner writing annotated output to w.
func New(w io.Writer, opts ...Option) *Scanner {
	cfg := &config{
		bufferSize: DefaultBufferSize,
		color:      true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.bufferSize < minBufferSize {
		cfg.bufferSize = minBufferSize
	}

	return &Scanner{
		w:     w,
		buf:   make([]byte, cfg.bufferSize),
		color: cfg.color,
	}
}

// Scan reads r to EOF, writing the annotated stream to the scanner's
// writer. It returns read and write failures; malformed content is never
// an error.
//
// At EOF any bytes still held back waiting for continuation bytes are
// each flagged as encoding errors, since the continuations can no longer
// arrive from this source. The whitespace carry and the open condition
// persist into the next Scan call.
func (s *Scanner) Scan(r io.Reader) error {
	for {
		n, err := r.Read(s.buf[s.filled:])
		if n > 0 {
			s.filled += n
			if werr := s.consume(); werr != nil {
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

	// Orphaned tail of a split sequence: no more bytes will come.
	for i := s.flushed; i < s.filled; i++ {
		if err := s.badByte(Encoding, i); err != nil {
			return err
		}
	}
	s.flushed, s.filled = 0, 0
	return nil
}

// Close resets the terminal if the stream ended inside a highlight. It
// does not close the underlying writer.
func (s *Scanner) Close() error {
	if s.cond == OK {
		return nil
	}
	err := s.writeMarkup(OK)
	s.cond = OK
	return err
}
