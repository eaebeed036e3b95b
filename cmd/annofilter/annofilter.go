package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anno-tools/anno/internal/config"
	"github.com/anno-tools/anno/internal/source"
	"github.com/anno-tools/anno/pkg/report"
	"github.com/anno-tools/anno/pkg/scan"
)

var verbosity = 0
var noColor = false
var bufferSize = scan.DefaultBufferSize

var cmd = &cobra.Command{
	Use:   "annofilter [file...]",
	Short: "Annotate encoding and other text problems with color codes for less",
	Long: `Annotates encoding and other text problems with color codes for less.
Reads standard input or the named files ("-" means standard input) and
writes the annotated stream to standard output.`,
	PersistentPreRun: logging,
	RunE:             run,
}

func main() {
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")
	cmd.Flags().BoolVar(&noColor, "no-color", noColor, "annotate without color escape codes")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", bufferSize, "working window capacity in bytes")

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(report.ExitCode(err))
	}
}

func run(cc *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	color := !noColor
	if !cc.Flags().Changed("no-color") && cfg.Color != nil {
		color = *cfg.Color
	}
	size := bufferSize
	if !cc.Flags().Changed("buffer-size") && cfg.BufferSize > 0 {
		size = cfg.BufferSize
	}
	log.Debugf("scanning with a %d byte window, color=%v", size, color)

	out := bufio.NewWriter(os.Stdout)
	opts := []scan.Option{scan.BufferSize(size)}
	if !color {
		opts = append(opts, scan.NoColor())
	}
	s := scan.New(out, opts...)

	err = source.Each(args, func(r io.Reader) error {
		if err := s.Scan(r); err != nil {
			return err
		}
		// Keep the pager fed source by source.
		return out.Flush()
	})
	if err != nil {
		return err
	}
	if err := s.Close(); err != nil {
		return err
	}
	return out.Flush()
}

func logging(cmd *cobra.Command, args []string) {
	// Unlike the other tools, stdout is the data stream here; logs go
	// to stderr.
	log.SetOutput(os.Stderr)
	switch verbosity {
	case 0:
		log.SetLevel(log.WarnLevel)
	case 1:
		log.SetLevel(log.InfoLevel)
	default: // 2+
		log.SetLevel(log.DebugLevel)
	}
}
