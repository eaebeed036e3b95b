// Package pager launches the viewer process with the annotation filter
// wired in: LESSOPEN makes less run annofilter over every input
// (including stdin), and -R makes it pass the filter's color codes
// through to the terminal.
package pager

import (
	"os"
	"os/exec"
)

// DefaultPager is the viewer run when no other is configured.
const DefaultPager = "less"

// lessOpen is the input preprocessor setting handed to less: "||" for
// exit-code-aware pipe mode, "-" to also filter stdin.
const lessOpen = "LESSOPEN=||-annofilter %s"

// Command builds the pager invocation: the file arguments are passed
// through, stdio is inherited, and the filter is injected via the
// environment.
func Command(pager string, args []string) *exec.Cmd {
	cmd := exec.Command(pager, append([]string{"-R"}, args...)...)
	cmd.Env = append(os.Environ(), lessOpen)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Run runs the pager to completion. The returned error is the pager's
// own failure, including its exit status.
func Run(pager string, args []string) error {
	return Command(pager, args).Run()
}
