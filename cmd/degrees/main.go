// Command degrees finds how many co-starring steps separate two people.
//
//	degrees [directory]          interactive search over <data-root>/<directory>
//	degrees serve [directory]    HTTP API over the same data
//	degrees generate <directory> synthetic dataset for experiments
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}

	return 0
}
