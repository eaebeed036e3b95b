// Package stats collects encoding and text-hygiene statistics over a
// byte stream: line counts, line-ending style, control characters,
// trailing whitespace, and the same UTF-8 defect classes the annotation
// scanner surfaces, counted instead of annotated.
//
// Collector implements io.Writer, so feeding it is an io.Copy away. The
// UTF-8 validation state survives chunk boundaries, so the counts do not
// depend on how the input is split.
package stats

import "github.com/anno-tools/anno/pkg/report"

// Collector accumulates statistics byte by byte. The zero value is
// ready to use. Like the scanner, one Collector is fed every input
// source of a run; its carry state persists across sources.
type Collector struct {
	// UTF-8 sequence state carried across writes.
	need int  // continuation bytes still expected
	min  rune // smallest codepoint legal at the current sequence length
	u    rune // codepoint accumulator

	lastCR bool
	lastWS bool

	Lines              int
	WindowsLines       int
	TrailingWhitespace int
	Nulls              int
	Controls           int
	UpperControls      int
	UpperPrintables    int
	Latin1Finnish      int

	MissingContinuations int
	OrphanContinuations  int
	Overlongs            int
	UTF8UpperControls    int
	IllegalLeads         int
}

// Write feeds p into the collector. It never fails.
func (c *Collector) Write(p []byte) (int, error) {
	for _, b := range p {
		c.scanByte(b)
	}
	return len(p), nil
}

func (c *Collector) scanByte(b byte) {
	// A sequence left incomplete by anything but a continuation byte
	// is a missing-continuation defect; the byte is then reclassified
	// on its own.
	if c.need > 0 && b&0xC0 != 0x80 {
		c.MissingContinuations++
		c.need = 0
	}

	switch {
	case b&0x80 == 0:
		c.need = 0
	case b&0x40 == 0: // continuation
		if c.need == 0 {
			c.OrphanContinuations++
		} else {
			c.u = c.u<<6 | rune(b&0x3F)
			c.need--
			if c.need == 0 {
				if c.u < c.min {
					c.Overlongs++
				}
				if c.u >= 0x80 && c.u < 0xA0 {
					c.UTF8UpperControls++
				}
			}
		}
	case b&0x20 == 0: // two-byte leading byte
		c.u = rune(b & 0x1F)
		c.need = 1
		c.min = 0x80
	case b&0x10 == 0: // three-byte leading byte
		c.u = rune(b & 0x0F)
		c.need = 2
		c.min = 0x800
	case b < 0xF5: // four-byte leading byte
		c.u = rune(b & 0x07)
		c.need = 3
		c.min = 0x10000
	default: // illegal leading byte
		c.IllegalLeads++
		c.need = 0
	}

	if b == '\n' {
		if c.lastCR {
			c.WindowsLines++
		}
		if c.lastWS {
			c.TrailingWhitespace++
		}
		c.Lines++
	}
	c.lastCR = b == '\r'
	if b != '\r' {
		c.lastWS = b == '\t' || b == ' '
	}

	if b == 0 {
		c.Nulls++
	}
	if b > 0 && b < 0x20 && b != '\r' && b != '\n' && b != '\t' {
		c.Controls++
	}
	if b >= 0x80 && b < 0xA0 {
		c.UpperControls++
	}
	if b >= 0xA0 {
		c.UpperPrintables++
	}
	switch b {
	case 0xC4, 0xC5, 0xD6, 0xE4, 0xE5, 0xF6:
		// Latin-1 ÄÅÖäåö: a high ratio among upper printables suggests
		// Latin-1 Finnish text rather than broken UTF-8.
		c.Latin1Finnish++
	}
}

// Report prints the collected statistics. Zero counters are omitted,
// and each finding is colored by severity.
func (c *Collector) Report(r *report.Reporter) {
	r.Infof("%d lines\n", c.Lines)
	if c.WindowsLines > 0 {
		r.Warnf("%d windows line endings\n", c.WindowsLines)
	}
	if c.Nulls > 0 {
		r.Errorf("%d null characters\n", c.Nulls)
	}
	if c.Controls > 0 {
		r.Errorf("%d control characters\n", c.Controls)
	}
	if c.UpperControls > 0 {
		r.Warnf("%d upper control characters\n", c.UpperControls)
	}
	if c.TrailingWhitespace > 0 {
		r.Warnf("%d trailing whitespaces\n", c.TrailingWhitespace)
	}

	if c.MissingContinuations > 0 {
		r.Errorf("%d missing utf8 continuation bytes\n", c.MissingContinuations)
	}
	if c.OrphanContinuations > 0 {
		r.Errorf("%d orphan utf8 continuation bytes\n", c.OrphanContinuations)
	}
	if c.Overlongs > 0 {
		r.Errorf("%d overlong utf8 encodings\n", c.Overlongs)
	}
	if c.UTF8UpperControls > 0 {
		r.Errorf("%d utf8 upper control characters\n", c.UTF8UpperControls)
	}
	if c.IllegalLeads > 0 {
		r.Errorf("%d illegal utf8 encodings\n", c.IllegalLeads)
	}
	if c.UpperPrintables > 0 {
		if 100*c.Latin1Finnish/c.UpperPrintables > 80 {
			r.Infof("%d/%d finnish letters out of upper printables\n", c.Latin1Finnish, c.UpperPrintables)
		} else {
			r.Warnf("%d/%d finnish letters out of upper printables\n", c.Latin1Finnish, c.UpperPrintables)
		}
	}
}
