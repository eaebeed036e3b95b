package scan

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"
	"testing/quick"
)

// chunkReader serves its data in caller-chosen slice sizes, cycling
// through sizes. A size of zero advances to the next size.
type chunkReader struct {
	data  []byte
	sizes []uint8
	next  int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 1
	if len(r.sizes) > 0 {
		n = int(r.sizes[r.next%len(r.sizes)])%7 + 1
		r.next++
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

func scanAll(r io.Reader, opts ...Option) (string, error) {
	var buf bytes.Buffer
	s := New(&buf, opts...)
	if err := s.Scan(r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Property: output does not depend on where read-chunk boundaries fall.
func TestProperty_ChunkingInvariance(t *testing.T) {
	property := func(data []byte, sizes []uint8) bool {
		whole, err := scanAll(bytes.NewReader(data))
		if err != nil {
			t.Logf("whole scan failed: %v", err)
			return false
		}
		chunked, err := scanAll(&chunkReader{data: data, sizes: sizes})
		if err != nil {
			t.Logf("chunked scan failed: %v", err)
			return false
		}
		return whole == chunked
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: a tiny window forces constant early-outs but never changes
// the classification.
func TestProperty_SmallWindowInvariance(t *testing.T) {
	property := func(data []byte) bool {
		whole, err := scanAll(bytes.NewReader(data))
		if err != nil {
			t.Logf("whole scan failed: %v", err)
			return false
		}
		small, err := scanAll(iotest.OneByteReader(bytes.NewReader(data)), BufferSize(minBufferSize))
		if err != nil {
			t.Logf("small-window scan failed: %v", err)
			return false
		}
		return whole == small
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: inputs that are clean UTF-8 with no control characters and
// no trailing whitespace pass through byte-exact.
func TestProperty_CleanPassthrough(t *testing.T) {
	property := func(words []string) bool {
		var input bytes.Buffer
		for _, w := range words {
			for _, r := range w {
				// Strip anything the scanner would annotate so the
				// remainder must survive untouched.
				if r < 0x20 || (r >= 0x80 && r < 0xA0) {
					continue
				}
				input.WriteRune(r)
			}
			input.WriteString(".\n")
		}
		got, err := scanAll(bytes.NewReader(input.Bytes()))
		if err != nil {
			t.Logf("scan failed: %v", err)
			return false
		}
		return got == input.String()
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestScan_SplitSequenceAtEveryBoundary(t *testing.T) {
	input := []byte("a\xc3\xa9b\xe2\x82\xacc\xf0\x9f\x98\x80d \ne\xc0\x80f")
	whole, err := scanAll(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("whole scan failed: %v", err)
	}
	for cut := 1; cut < len(input); cut++ {
		var buf bytes.Buffer
		s := New(&buf)
		r := io.MultiReader(bytes.NewReader(input[:cut]), bytes.NewReader(input[cut:]))
		if err := s.Scan(r); err != nil {
			t.Fatalf("cut %d: unexpected error: %v", cut, err)
		}
		if got := buf.String(); got != whole {
			t.Errorf("cut %d: got %q, want %q", cut, got, whole)
		}
	}
}
