// Package config provides the configuration management for the omnicalc
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "github.com/agbru/omnicalc/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by omnicalc.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "OMNICALC_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultTimeout is the default per-evaluation timeout.
	DefaultTimeout = 30 * time.Second
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the operation to evaluate to the output format.
type AppConfig struct {
	// Op is the operation to evaluate in one-shot mode (e.g. "add", "sqrt").
	Op string
	// Operands are the positional decimal-integer arguments for Op.
	Operands []string
	// Interactive, if true, starts the application in REPL mode.
	Interactive bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// Timeout sets the maximum duration for a single evaluation.
	Timeout time.Duration
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses banners, spinners, and informational messages.
	Quiet bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// Verbose, if true, always prints full results instead of the truncated
	// display used for very large values.
	Verbose bool
}

// ParseConfig parses command-line arguments and environment variables into
// an AppConfig. Flags take precedence over environment variables, which take
// precedence over defaults.
//
// Parameters:
//   - programName: The name used in usage output (typically os.Args[0]).
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for usage and error output.
//   - availableOps: The valid operation names, for validation and usage.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A ConfigError if parsing or validation fails.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Op, "op", getEnvString("OP", ""), "operation to evaluate (see -list)")
	fs.BoolVar(&cfg.Interactive, "i", false, "start an interactive REPL session")
	fs.BoolVar(&cfg.ServerMode, "server", getEnvBool("SERVER", false), "start as an HTTP server")
	fs.StringVar(&cfg.Port, "port", getEnvString("PORT", DefaultPort), "port to listen on in server mode")
	fs.DurationVar(&cfg.Timeout, "timeout", getEnvDuration("TIMEOUT", DefaultTimeout), "maximum duration for a single evaluation")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output results as JSON")
	fs.BoolVar(&cfg.Quiet, "q", getEnvBool("QUIET", false), "quiet mode for scripting")
	fs.BoolVar(&cfg.NoColor, "no-color", getEnvBool("NO_COLOR", false), "disable color output")
	fs.StringVar(&cfg.OutputFile, "out", "", "save the result to a file")
	fs.BoolVar(&cfg.Verbose, "v", false, "always print full results")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [operands...]\n\n", programName)
		fmt.Fprintf(errWriter, "An arbitrary-precision integer calculator.\n")
		fmt.Fprintf(errWriter, "Available operations: %v\n\nFlags:\n", availableOps)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}
	cfg.Operands = fs.Args()

	if err := cfg.Validate(availableOps); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableOps: A slice of strings listing the valid operation names.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     otherwise nil.
func (c AppConfig) Validate(availableOps []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.ServerMode {
		port, err := strconv.Atoi(c.Port)
		if err != nil || port < 1 || port > 65535 {
			return apperrors.NewConfigError("invalid port %q: must be in 1..65535", c.Port)
		}
		return nil
	}
	if c.Interactive {
		return nil
	}
	if c.Op == "" {
		return apperrors.NewConfigError("no operation given: use -op, -i, or -server")
	}
	for _, name := range availableOps {
		if name == c.Op {
			return nil
		}
	}
	return apperrors.NewConfigError("unknown operation %q, available: %v", c.Op, availableOps)
}
