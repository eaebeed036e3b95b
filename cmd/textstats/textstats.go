package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anno-tools/anno/internal/config"
	"github.com/anno-tools/anno/internal/source"
	"github.com/anno-tools/anno/pkg/report"
	"github.com/anno-tools/anno/pkg/stats"
)

var verbosity = 0
var useColor = false

var cmd = &cobra.Command{
	Use:              "textstats [file...]",
	Short:            "Check encoding and line endings, count lines, etc",
	PersistentPreRun: logging,
	RunE:             run,
}

func main() {
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")
	cmd.Flags().BoolVarP(&useColor, "color", "r", useColor, "use color codes in output")

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

	color := useColor
	if !color && cfg.Color != nil && *cfg.Color {
		color = term.IsTerminal(int(os.Stderr.Fd()))
	}

	c := &stats.Collector{}
	err = source.Each(args, func(r io.Reader) error {
		_, err := io.Copy(c, r)
		return err
	})
	if err != nil {
		return err
	}
	log.Debugf("%d lines collected", c.Lines)

	c.Report(report.New(os.Stderr, color))
	return nil
}

func logging(cmd *cobra.Command, args []string) {
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
