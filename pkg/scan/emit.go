package scan

import (
	"fmt"
	"io"
)

// flush writes the validated bytes in [flushed, to) verbatim as one bulk
// copy, closing any open highlight first. Flushing nothing changes
// nothing, so runs of defective bytes keep their highlight open.
func (s *Scanner) flush(to int) error {
	if to <= s.flushed {
		return nil
	}
	if s.cond != OK {
		if err := s.writeMarkup(OK); err != nil {
			return err
		}
	}
	s.cond = OK
	if _, err := s.w.Write(s.buf[s.flushed:to]); err != nil {
		return fmt.Errorf("cannot write: %w", err)
	}
	s.flushed = to
	return nil
}

// preface flushes everything before position i and opens the highlight
// for cond, unless it is already the open one.
func (s *Scanner) preface(cond Condition, i int) error {
	if err := s.flush(i); err != nil {
		return err
	}
	if cond != s.cond {
		if err := s.writeMarkup(cond); err != nil {
			return err
		}
		s.cond = cond
	}
	return nil
}

// badByte annotates the single byte at i: bracketed hex in place of the
// raw byte, under the highlight for cond.
func (s *Scanner) badByte(cond Condition, i int) error {
	if err := s.preface(cond, i); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "<%02x>", s.buf[i]); err != nil {
		return fmt.Errorf("cannot write: %w", err)
	}
	s.flushed = i + 1
	return nil
}

// badRun annotates count consecutive bytes starting at i under one
// highlight.
func (s *Scanner) badRun(count int, cond Condition, i int) error {
	for j := 0; j < count; j++ {
		if err := s.badByte(cond, i+j); err != nil {
			return err
		}
	}
	return nil
}

// marker emits a zero-width annotation before position i: a single
// highlighted space, consuming no input byte.
func (s *Scanner) marker(cond Condition, i int) error {
	if err := s.preface(cond, i); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, " "); err != nil {
		return fmt.Errorf("cannot write: %w", err)
	}
	return nil
}

func (s *Scanner) writeMarkup(c Condition) error {
	if !s.color {
		return nil
	}
	if _, err := io.WriteString(s.w, c.markup()); err != nil {
		return fmt.Errorf("cannot write: %w", err)
	}
	return nil
}
