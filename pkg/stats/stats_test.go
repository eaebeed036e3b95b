package stats_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/anno-tools/anno/pkg/report"
	"github.com/anno-tools/anno/pkg/stats"
)

func collect(t *testing.T, input string) *stats.Collector {
	t.Helper()
	c := &stats.Collector{}
	_, err := io.Copy(c, strings.NewReader(input))
	require.NoError(t, err)
	return c
}

func TestCollector_Lines(t *testing.T) {
	c := collect(t, "one\r\ntwo \nthree\n")
	require.Equal(t, 3, c.Lines)
	require.Equal(t, 1, c.WindowsLines)
	require.Equal(t, 1, c.TrailingWhitespace)
	require.Equal(t, 0, c.Controls, "CR and LF are not control defects")
}

func TestCollector_TrailingTabBeforeCRLF(t *testing.T) {
	// The CR between the tab and the newline does not hide the
	// trailing whitespace.
	c := collect(t, "x\t\r\n")
	require.Equal(t, 1, c.TrailingWhitespace)
	require.Equal(t, 1, c.WindowsLines)
}

func TestCollector_ControlBytes(t *testing.T) {
	c := collect(t, "\x00\x01\x07ok")
	require.Equal(t, 1, c.Nulls)
	require.Equal(t, 2, c.Controls)
}

func TestCollector_ValidUTF8(t *testing.T) {
	c := collect(t, "héllo wörld € \U0001F600\n")
	require.Zero(t, c.MissingContinuations)
	require.Zero(t, c.OrphanContinuations)
	require.Zero(t, c.Overlongs)
	require.Zero(t, c.UTF8UpperControls)
	require.Zero(t, c.IllegalLeads)
}

func TestCollector_UTF8Defects(t *testing.T) {
	cases := []struct {
		name  string
		input string
		check func(t *testing.T, c *stats.Collector)
	}{
		{"orphan continuation", "\x80", func(t *testing.T, c *stats.Collector) {
			require.Equal(t, 1, c.OrphanContinuations)
			require.Equal(t, 1, c.UpperControls)
		}},
		{"missing continuation", "\xc3x", func(t *testing.T, c *stats.Collector) {
			require.Equal(t, 1, c.MissingContinuations)
		}},
		{"overlong", "\xc0\x80", func(t *testing.T, c *stats.Collector) {
			require.Equal(t, 1, c.Overlongs)
		}},
		{"upper control codepoint", "\xc2\x80", func(t *testing.T, c *stats.Collector) {
			require.Equal(t, 1, c.UTF8UpperControls)
			require.Zero(t, c.Overlongs)
		}},
		{"illegal lead", "\xf5", func(t *testing.T, c *stats.Collector) {
			require.Equal(t, 1, c.IllegalLeads)
		}},
		{"truncated then new lead", "\xe2\x82\xc3\xa9", func(t *testing.T, c *stats.Collector) {
			require.Equal(t, 1, c.MissingContinuations)
			require.Zero(t, c.OrphanContinuations)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, collect(t, tc.input))
		})
	}
}

func TestCollector_ChunkingInvariance(t *testing.T) {
	input := "a\xc3\xa9 \r\n\x80\xc0\x80\xf5b\t\n\x00"

	whole := &stats.Collector{}
	_, err := io.Copy(whole, strings.NewReader(input))
	require.NoError(t, err)

	bytewise := &stats.Collector{}
	_, err = io.Copy(bytewise, iotest.OneByteReader(strings.NewReader(input)))
	require.NoError(t, err)

	require.Equal(t, whole, bytewise)
}

func TestCollector_Report(t *testing.T) {
	c := collect(t, "a\r\n\x00")
	var buf bytes.Buffer
	c.Report(report.New(&buf, false))
	want := "1 lines\n1 windows line endings\n1 null characters\n"
	require.Equal(t, want, buf.String())
}

func TestCollector_FinnishRatio(t *testing.T) {
	var buf bytes.Buffer
	c := &stats.Collector{UpperPrintables: 10, Latin1Finnish: 9}
	c.Report(report.New(&buf, false))
	require.Contains(t, buf.String(), "9/10 finnish letters out of upper printables\n")

	buf.Reset()
	c = &stats.Collector{UpperPrintables: 10, Latin1Finnish: 2}
	c.Report(report.New(&buf, true))
	require.Contains(t, buf.String(), "\x1b[33m2/10 finnish letters out of upper printables\n\x1b[39m")
}
