package scan

// consume classifies every byte of the window's unconsumed portion and
// emits it. It either drains the window completely or returns after an
// early-out, leaving a split multi-byte sequence compacted to the front
// of the window for the next refill.
func (s *Scanner) consume() error {
	i := 0
	for i < s.filled {
		ch := s.buf[i]
		switch {
		case ch&0x80 == 0: // single byte
			// Control bytes (CR included) are annotated but still reach
			// the whitespace bookkeeping below.
			if ch < 0x20 && ch != '\n' && ch != '\t' {
				if err := s.badByte(Control, i); err != nil {
					return err
				}
			}

		case ch&0x40 == 0: // continuation without a leading byte
			// Annotated, but like any other lone byte it reaches the
			// whitespace bookkeeping and clears the carry.
			if err := s.badByte(Encoding, i); err != nil {
				return err
			}

		case ch&0x20 == 0: // two-byte leading byte
			if i+1 >= s.filled {
				return s.earlyOut(i)
			}
			c1 := s.buf[i+1]
			if c1&0xC0 != 0x80 {
				if err := s.badByte(Encoding, i); err != nil {
					return err
				}
				i++
				continue
			}
			u := rune(ch&0x1F)<<6 | rune(c1&0x3F)
			switch {
			case u < 0x80:
				if err := s.badRun(2, Overlong, i); err != nil {
					return err
				}
			case u < 0xA0:
				if err := s.badRun(2, HighControl, i); err != nil {
					return err
				}
			}
			s.lastWS = false
			i += 2
			continue

		case ch&0x10 == 0: // three-byte leading byte
			if i+2 >= s.filled {
				return s.earlyOut(i)
			}
			c1, c2 := s.buf[i+1], s.buf[i+2]
			if c1&0xC0 != 0x80 || c2&0xC0 != 0x80 {
				if err := s.badByte(Encoding, i); err != nil {
					return err
				}
				i++
				continue
			}
			u := rune(ch&0x0F)<<12 | rune(c1&0x3F)<<6 | rune(c2&0x3F)
			if u < 0x800 {
				if err := s.badRun(3, Overlong, i); err != nil {
					return err
				}
			}
			s.lastWS = false
			i += 3
			continue

		case ch < 0xF5: // four-byte leading byte
			if i+3 >= s.filled {
				return s.earlyOut(i)
			}
			c1, c2, c3 := s.buf[i+1], s.buf[i+2], s.buf[i+3]
			if c1&0xC0 != 0x80 || c2&0xC0 != 0x80 || c3&0xC0 != 0x80 {
				if err := s.badByte(Encoding, i); err != nil {
					return err
				}
				i++
				continue
			}
			u := rune(ch&0x07)<<18 | rune(c1&0x3F)<<12 | rune(c2&0x3F)<<6 | rune(c3&0x3F)
			if u < 0x10000 {
				if err := s.badRun(4, Overlong, i); err != nil {
					return err
				}
			}
			s.lastWS = false
			i += 4
			continue

		default: // illegal leading byte 0xF5-0xFF, no lookahead
			if err := s.badByte(Encoding, i); err != nil {
				return err
			}
			i++
			continue
		}

		// Single byte: whitespace bookkeeping. The marker goes in front
		// of the newline; the newline itself passes through.
		if ch == '\n' && s.lastWS {
			if err := s.marker(TrailingWhitespace, i); err != nil {
				return err
			}
		}
		if ch != '\r' {
			s.lastWS = ch == '\t' || ch == ' '
		}
		i++
	}

	if err := s.flush(s.filled); err != nil {
		return err
	}
	s.flushed, s.filled = 0, 0
	return nil
}

// earlyOut suspends scanning at a leading byte whose continuations have
// not arrived yet. Everything decided so far is flushed and the undecided
// tail moves to the front of the window. Cost is proportional to the tail
// length, which is at most three bytes.
func (s *Scanner) earlyOut(i int) error {
	if err := s.flush(i); err != nil {
		return err
	}
	copy(s.buf, s.buf[i:s.filled])
	s.filled -= i
	s.flushed = 0
	return nil
}
