// Command ranksort is the entry point for the ranksort CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tOgg1/ranksort/internal/rankcli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var _ = []string{commit, date}

func main() {
	if err := execute(version); err != nil {
		var exitErr *rankcli.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(rankcli.ExitCodeFailure)
	}
}
