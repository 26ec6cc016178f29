// Command omnicalc is an arbitrary-precision integer calculator.
// It evaluates a single operation from the command line, serves the same
// operations over HTTP, or runs an interactive REPL session.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/omnicalc/internal/app"
	apperrors "github.com/agbru/omnicalc/internal/errors"
)

func main() {
	os.Exit(run())
}

// run contains the real entry point so deferred cleanup executes before the
// process exits.
func run() int {
	// --version works from any position, before config parsing
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	ctx, stop := app.SetupSignals(context.Background())
	defer stop()

	return a.Run(ctx, os.Stdout)
}
