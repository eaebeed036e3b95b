package scan

// Condition classifies what the scanner found at the current emission
// point. Exactly one condition is "open" in the output at any time.
type Condition int

const (
	// OK is passthrough: validly encoded, unremarkable bytes.
	OK Condition = iota

	// Control is a bare control character below 0x20, other than
	// newline and tab.
	Control

	// Encoding is a UTF-8 encoding error: a stray continuation byte, a
	// leading byte whose continuations are missing or malformed, or a
	// byte in the illegal range 0xF5-0xFF.
	Encoding

	// Overlong is a multi-byte sequence encoding a codepoint that fits
	// in fewer bytes. The whole sequence carries the condition.
	Overlong

	// HighControl is a two-byte sequence encoding a codepoint in
	// U+0080-U+009F.
	HighControl

	// TrailingWhitespace marks a space or tab immediately before a
	// newline. It is a zero-width annotation: no input byte is
	// consumed by it.
	TrailingWhitespace
)

// markup returns the escape sequence that switches the terminal into the
// highlight for c. OK is the reset that closes any highlight.
func (c Condition) markup() string {
	switch c {
	case Control, Encoding, Overlong, HighControl:
		return "\x1b[41;97m"
	case TrailingWhitespace:
		return "\x1b[43m"
	default:
		return "\x1b[0m"
	}
}

func (c Condition) String() string {
	switch c {
	case OK:
		return "ok"
	case Control:
		return "control"
	case Encoding:
		return "encoding"
	case Overlong:
		return "overlong"
	case HighControl:
		return "high-control"
	case TrailingWhitespace:
		return "trailing-whitespace"
	default:
		return "unknown"
	}
}
