package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/anno-tools/anno/internal/config"
	"github.com/anno-tools/anno/pkg/pager"
	"github.com/anno-tools/anno/pkg/report"
)

var verbosity = 0

var cmd = &cobra.Command{
	Use:   "anno [file...]",
	Short: "View files in less with text problems annotated",
	Long: `Runs less with annofilter configured as its input preprocessor, so
encoding errors, stray control characters and trailing whitespace show
up highlighted while paging.`,
	PersistentPreRun: logging,
	RunE:             run,
}

func main() {
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")

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

	pagerCmd := pager.DefaultPager
	if cfg.Pager != "" {
		pagerCmd = cfg.Pager
	}
	log.Debugf("launching %s", pagerCmd)

	err = pager.Run(pagerCmd, args)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("cannot run %s: %w", pagerCmd, err)
	}
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
