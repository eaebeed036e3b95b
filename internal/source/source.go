// Package source iterates the input sources of a tool invocation: named
// files in argument order, with "-" selecting standard input, and
// standard input alone when no names are given.
package source

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Each runs fn over every named input in order. Open failures and
// errors returned by fn stop the iteration; the error carries the file
// name and wraps the OS error so the caller can derive an exit status
// from it.
func Each(names []string, fn func(r io.Reader) error) error {
	if len(names) == 0 {
		log.Debug("reading standard input")
		return fn(os.Stdin)
	}

	for _, name := range names {
		if name == "-" {
			log.Debug("reading standard input")
			if err := fn(os.Stdin); err != nil {
				return err
			}
			continue
		}

		log.Debugf("reading %s", name)
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("cannot open file %q: %w", name, err)
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", name, err)
		}
		f.Close()
	}
	return nil
}
