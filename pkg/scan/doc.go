// Package scan implements a streaming byte-level validator for UTF-8
// encoding and text hygiene.
//
// The scanner copies its input to an output writer unchanged, except that
// defective spans are wrapped in ANSI highlight codes and the offending
// bytes are rendered as bracketed hex (for example "<ff>") so the output
// stays text-safe. Defects it finds:
//
//   - bare control characters (anything below 0x20 except tab and newline)
//   - UTF-8 encoding errors: stray continuation bytes, leading bytes with
//     missing or malformed continuations, and the illegal range 0xF5-0xFF
//   - overlong encodings (a codepoint encoded in more bytes than needed)
//   - codepoints in U+0080-U+009F, the rarely intended C1 control range
//   - trailing whitespace before a newline
//
// # Basic Usage
//
//	s := scan.New(os.Stdout)
//	for _, r := range readers {
//		if err := s.Scan(r); err != nil {
//			return err
//		}
//	}
//	s.Close()
//
// A Scanner is built once and fed any number of sources. Annotation state
// deliberately survives from one source to the next, so logically
// concatenated inputs behave as one stream. Close resets the terminal if
// the input ended inside a highlighted span.
//
// # Design Principles
//
//   - Bounded memory: input is processed through a fixed-capacity window
//     (see BufferSize); the whole input is never materialized.
//   - Chunking invariance: classification does not depend on where read
//     boundaries fall. A multi-byte sequence split across reads is held
//     back, the window is compacted, and scanning resumes once the
//     continuation bytes arrive.
//   - Minimal markup: a run of bytes sharing a condition opens its
//     highlight once, not once per byte.
//   - Valid spans are flushed with a single bulk write.
//
// The scanner never fails on malformed content; defects are exactly what
// it exists to surface. The only errors it returns are read and write
// failures from the underlying streams.
package scan
