// Package cli provides the command-line presentation layer: result
// formatting, spinner-based progress indication, one-shot evaluation, and the
// interactive REPL.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/omnicalc/internal/bigint"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatValue renders a single result value for terminal display.
// Values beyond TruncationLimit digits are shown as leading and trailing
// edges with the digit count, unless verbose output is requested.
//
// Parameters:
//   - v: The value to format.
//   - verbose: Whether to always render the full value.
//
// Returns:
//   - string: The formatted value.
func FormatValue(v bigint.Int, verbose bool) string {
	s := v.String()
	if verbose || v.DigitCount() <= TruncationLimit {
		return s
	}
	body := strings.TrimPrefix(s, "-")
	sign := ""
	if len(body) != len(s) {
		sign = "-"
	}
	return fmt.Sprintf("%s%s...%s (%d digits)",
		sign, body[:DisplayEdges], body[len(body)-DisplayEdges:], v.DigitCount())
}

// FormatResults renders the values produced by one evaluation, separated by
// a single space. Multi-valued operations (divmod) print their values in
// operation order.
func FormatResults(values []bigint.Int, verbose bool) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v, verbose)
	}
	return strings.Join(parts, " ")
}

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Verbose always writes full values.
	Verbose bool
}

// WriteResultToFile writes an evaluation result to a file. The full values
// are always written; truncation only applies to terminal display.
//
// Parameters:
//   - op: The operation name.
//   - operands: The textual operands as given by the user.
//   - results: The evaluation results.
//   - duration: The evaluation duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(op string, operands []string, results []bigint.Int, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# omnicalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s %s\n", op, strings.Join(operands, " "))
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	for _, r := range results {
		fmt.Fprintf(file, "# Digits: %d\n", r.DigitCount())
	}
	fmt.Fprintf(file, "\n")
	for _, r := range results {
		fmt.Fprintf(file, "%s\n", r.String())
	}
	return nil
}

// writeOut writes a formatted string to the output writer.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
