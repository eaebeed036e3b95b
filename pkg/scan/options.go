package scan

const (
	// DefaultBufferSize is the default working window capacity.
	DefaultBufferSize = 64 * 1024

	// minBufferSize leaves room for a full four-byte sequence plus
	// forward progress after a compaction.
	minBufferSize = 8
)

// config holds scanner configuration.
type config struct {
	bufferSize int
	color      bool
}

// Option configures a Scanner.
type Option func(*config)

// BufferSize sets the capacity of the working window in bytes.
//
// The window bounds how much input is held at once; compaction on a split
// multi-byte sequence moves at most three bytes regardless of this size.
// Values below an internal minimum are raised to it.
//
// Default: 64 KiB.
func BufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// NoColor disables escape-code emission. Defective bytes are still
// rendered as bracketed hex, so the output remains a faithful plain-text
// annotation of the input.
//
// Default: color on, since the usual consumer is "less -R".
func NoColor() Option {
	return func(c *config) {
		c.color = false
	}
}
