package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/omnicalc/internal/calc"
	"github.com/agbru/omnicalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout is the maximum duration for each evaluation.
	Timeout time.Duration
	// Verbose displays full results instead of truncated ones.
	Verbose bool
}

// REPL represents an interactive calculator session.
type REPL struct {
	config    REPLConfig
	registry  *calc.Registry
	evaluator *calc.Evaluator
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - registry: The operation registry, used for listing and help.
//   - evaluator: The evaluator that executes operations.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(registry *calc.Registry, evaluator *calc.Evaluator, config REPLConfig) *REPL {
	return &REPL{
		config:    config,
		registry:  registry,
		evaluator: evaluator,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until the user
// exits, EOF is reached, or the context is cancelled.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		fmt.Fprint(r.out, ui.ColorGreen()+"calc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(ctx, input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🧮 OmniCalc - Interactive Mode%s                        %s║%s\n",
		ui.ColorBlue(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorBlue(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorBlue(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <a> [b]%s  - Evaluate an operation (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.getOpList())
	fmt.Fprintf(r.out, "  %slist%s          - List available operations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sverbose%s       - Toggle full display of large results\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s  - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// getOpList returns a comma-separated list of available operations.
func (r *REPL) getOpList() string {
	return strings.Join(r.registry.List(), ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "list", "ls":
		r.cmdList()
	case "verbose":
		r.cmdVerbose()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Any other token is treated as an operation name
		r.evaluate(ctx, cmd, args)
	}

	return true
}

// evaluate runs one operation against the evaluator and prints its outcome.
func (r *REPL) evaluate(ctx context.Context, name string, operands []string) {
	if _, err := r.registry.Get(name); err != nil {
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}

	evalCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	start := time.Now()
	results, err := r.evaluator.Evaluate(evalCtx, name, operands...)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time: %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	for _, v := range results {
		fmt.Fprintf(r.out, "  Digits: %s%d%s\n", ui.ColorBlue(), v.DigitCount(), ui.ColorReset())
	}
	fmt.Fprintf(r.out, "  %s %s= %s%s%s\n",
		name, strings.Join(operands, " "),
		ui.ColorGreen(), FormatResults(results, r.config.Verbose), ui.ColorReset())
	fmt.Fprintln(r.out)
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable operations:%s\n", ui.ColorBold(), ui.ColorReset())
	ops := r.registry.All()
	for _, name := range r.registry.List() {
		op := ops[name]
		fmt.Fprintf(r.out, "  %s%-8s%s - %s (arity %d)\n",
			ui.ColorYellow(), op.Name, ui.ColorReset(), op.Description, op.Arity)
	}
	fmt.Fprintln(r.out)
}

// cmdVerbose toggles full display of large results.
func (r *REPL) cmdVerbose() {
	r.config.Verbose = !r.config.Verbose
	status := "disabled"
	if r.config.Verbose {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Verbose display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:    %s%s%s\n", ui.ColorBlue(), r.config.Timeout, ui.ColorReset())
	verboseStatus := "no"
	if r.config.Verbose {
		verboseStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Verbose:    %s%s%s\n", ui.ColorBlue(), verboseStatus, ui.ColorReset())
	fmt.Fprintf(r.out, "  Operations: %s%d%s\n", ui.ColorBlue(), len(r.registry.List()), ui.ColorReset())
	fmt.Fprintln(r.out)
}
