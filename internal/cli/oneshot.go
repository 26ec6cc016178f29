package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/omnicalc/internal/bigint"
	"github.com/agbru/omnicalc/internal/calc"
	"github.com/agbru/omnicalc/internal/config"
	"github.com/agbru/omnicalc/internal/ui"
)

// EvalResult is the JSON representation of a one-shot evaluation, emitted
// when the -json flag is set.
type EvalResult struct {
	Op         string   `json:"op"`
	Operands   []string `json:"operands"`
	Results    []string `json:"results"`
	DurationMs float64  `json:"duration_ms"`
	Digits     []int    `json:"digits"`
}

// RunOnce evaluates a single operation from the configuration and writes the
// outcome to out. A spinner decorates the evaluation unless quiet or JSON
// output is requested.
//
// Parameters:
//   - ctx: The parent context; the configured timeout is applied on top.
//   - evaluator: The evaluator that executes the operation.
//   - cfg: The application configuration (operation, operands, output mode).
//   - out: The writer for results.
//
// Returns:
//   - error: The evaluation or output error, nil on success.
func RunOnce(ctx context.Context, evaluator *calc.Evaluator, cfg config.AppConfig, out io.Writer) error {
	evalCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var (
		results  []bigint.Int
		duration time.Duration
	)
	showSpinner := !cfg.Quiet && !cfg.JSONOutput
	err := RunWithSpinner(showSpinner, fmt.Sprintf("Evaluating %s...", cfg.Op), out, func() error {
		start := time.Now()
		var evalErr error
		results, evalErr = evaluator.Evaluate(evalCtx, cfg.Op, cfg.Operands...)
		duration = time.Since(start)
		return evalErr
	})
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		if err := writeJSONResult(out, cfg, results, duration); err != nil {
			return err
		}
	} else {
		writeTextResult(out, cfg, results, duration)
	}

	return WriteResultToFile(cfg.Op, cfg.Operands, results, duration, OutputConfig{
		OutputFile: cfg.OutputFile,
		Verbose:    cfg.Verbose,
	})
}

// writeJSONResult encodes the evaluation outcome as a single JSON object.
// Full values are always emitted; truncation is a terminal-only concern.
func writeJSONResult(out io.Writer, cfg config.AppConfig, results []bigint.Int, duration time.Duration) error {
	res := EvalResult{
		Op:         cfg.Op,
		Operands:   cfg.Operands,
		Results:    make([]string, len(results)),
		DurationMs: float64(duration.Microseconds()) / 1000.0,
		Digits:     make([]int, len(results)),
	}
	for i, v := range results {
		res.Results[i] = v.String()
		res.Digits[i] = v.DigitCount()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// writeTextResult prints the evaluation outcome for terminal consumption.
// Quiet mode prints only the raw values, one per line, for scripting.
func writeTextResult(out io.Writer, cfg config.AppConfig, results []bigint.Int, duration time.Duration) {
	if cfg.Quiet {
		for _, v := range results {
			writeOut(out, "%s\n", v.String())
		}
		return
	}

	writeOut(out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	writeOut(out, "  Time: %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	for _, v := range results {
		writeOut(out, "  Digits: %s%d%s\n", ui.ColorBlue(), v.DigitCount(), ui.ColorReset())
	}
	writeOut(out, "  %s %s = %s%s%s\n",
		cfg.Op, strings.Join(cfg.Operands, " "),
		ui.ColorGreen(), FormatResults(results, cfg.Verbose), ui.ColorReset())
	if !cfg.Verbose {
		for _, v := range results {
			if v.DigitCount() > TruncationLimit {
				writeOut(out, "(Tip: use the %s-v%s option to display the full value)\n", ui.ColorYellow(), ui.ColorReset())
				break
			}
		}
	}
}
