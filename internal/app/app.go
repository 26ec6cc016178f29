package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/omnicalc/internal/calc"
	"github.com/agbru/omnicalc/internal/cli"
	"github.com/agbru/omnicalc/internal/config"
	apperrors "github.com/agbru/omnicalc/internal/errors"
	"github.com/agbru/omnicalc/internal/logging"
	"github.com/agbru/omnicalc/internal/server"
	"github.com/agbru/omnicalc/internal/ui"
)

// Application represents the omnicalc application instance.
// It encapsulates the configuration and provides methods to run
// the application in various modes (one-shot CLI, server, REPL).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Registry provides access to the calculator operations.
	Registry *calc.Registry
	// Evaluator executes operations against the registry.
	Evaluator *calc.Evaluator
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	registry := calc.NewRegistry()

	// args[0] is program name, args[1:] are the actual arguments
	programName := "omnicalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, registry.List())
	if err != nil {
		return nil, err
	}

	var logger logging.Logger = logging.NopLogger{}
	if !cfg.Quiet && cfg.ServerMode {
		logger = logging.NewLogger(os.Stderr, "calc")
	}

	return &Application{
		Config:    cfg,
		Registry:  registry,
		Evaluator: calc.NewEvaluator(registry, logger),
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the appropriate handler (server, REPL, or one-shot).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects -no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.ServerMode {
		return a.runServer(ctx)
	}

	if a.Config.Interactive {
		return a.runREPL(ctx)
	}

	return a.runOnce(ctx, out)
}

// runServer starts the HTTP server mode. The server runs until the context
// is cancelled (SIGINT/SIGTERM via the caller's signal context).
func (a *Application) runServer(ctx context.Context) int {
	srv := server.NewServer(a.Registry, a.Evaluator, a.Config)
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive REPL mode.
func (a *Application) runREPL(ctx context.Context) int {
	repl := cli.NewREPL(a.Registry, a.Evaluator, cli.REPLConfig{
		Timeout: a.Config.Timeout,
		Verbose: a.Config.Verbose,
	})
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// runOnce evaluates a single operation and prints the result.
func (a *Application) runOnce(ctx context.Context, out io.Writer) int {
	start := time.Now()
	if err := cli.RunOnce(ctx, a.Evaluator, a.Config, out); err != nil {
		return apperrors.HandleEvaluationError(err, time.Since(start), a.ErrWriter, cli.CLIColorProvider{})
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
