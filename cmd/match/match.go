package main

import (
	"bufio"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anno-tools/anno/internal/config"
	"github.com/anno-tools/anno/internal/source"
	"github.com/anno-tools/anno/pkg/match"
	"github.com/anno-tools/anno/pkg/report"
)

var verbosity = 0
var countOnly = false
var useColor = false
var maxColumns = match.DefaultMaxColumns

// noMatches mirrors grep's convention: exit 1 when nothing matched.
var noMatches = false

var cmd = &cobra.Command{
	Use:   "match [flags] <pattern> [file...]",
	Short: "Search standard input or named files for exact matches of pattern",
	Long: `Searches standard input or named files for exact matches of pattern.
Understands only bytes, assumes binary if and only if the maximum line
length is exceeded.`,
	Args:             cobra.MinimumNArgs(1),
	PersistentPreRun: logging,
	RunE:             run,
}

func main() {
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", countOnly, "report only number of matches")
	cmd.Flags().BoolVarP(&useColor, "color", "r", useColor, "use color codes in output")
	cmd.Flags().IntVarP(&maxColumns, "max-columns", "m", maxColumns, "handle maximum line length of this many bytes")

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(report.ExitCode(err))
	}
	if noMatches {
		os.Exit(1)
	}
}

func run(cc *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	color := colorEnabled(useColor, cfg,
		term.IsTerminal(int(os.Stdout.Fd())),
		term.IsTerminal(int(os.Stderr.Fd())))
	cols := maxColumns
	if !cc.Flags().Changed("max-columns") && cfg.MaxColumns > 0 {
		cols = cfg.MaxColumns
	}
	log.Debugf("searching with a %d byte window, color=%v", cols, color)

	out := bufio.NewWriter(os.Stdout)
	opts := []match.Option{match.MaxColumns(cols)}
	if color {
		opts = append(opts, match.Color())
	}
	if countOnly {
		opts = append(opts, match.CountOnly())
	}
	m, err := match.New([]byte(args[0]), out, opts...)
	if err != nil {
		return err
	}

	if err := source.Each(args[1:], m.Scan); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}

	m.Report(report.New(os.Stderr, color))
	noMatches = m.Matches() == 0
	return nil
}

// colorEnabled decides color output. The flag forces it on; a config
// file default applies only when both streams are terminals, since the
// highlighting goes to stdout and the summary to stderr.
func colorEnabled(flag bool, cfg *config.Config, stdoutTTY, stderrTTY bool) bool {
	if flag {
		return true
	}
	return cfg.Color != nil && *cfg.Color && stdoutTTY && stderrTTY
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
