package calc

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/omnicalc/internal/bigint"
	apperrors "github.com/agbru/omnicalc/internal/errors"
	"github.com/agbru/omnicalc/internal/logging"
)

// Evaluator resolves operations by name, parses their operands, and executes
// them with tracing, metrics, and debug logging around each evaluation.
type Evaluator struct {
	registry *Registry
	logger   logging.Logger
}

// NewEvaluator creates an Evaluator over the given registry.
//
// Parameters:
//   - registry: The operation registry to resolve names against.
//   - logger: The logger for evaluation debug records. Nil defaults to a
//     no-op logger.
//
// Returns:
//   - *Evaluator: A new evaluator instance.
func NewEvaluator(registry *Registry, logger logging.Logger) *Evaluator {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Evaluator{registry: registry, logger: logger}
}

// Registry returns the evaluator's operation registry.
func (e *Evaluator) Registry() *Registry { return e.registry }

// Evaluate resolves the named operation, parses the textual operands, and
// applies the operation.
//
// The arithmetic itself is synchronous and CPU-bound; the context is only
// consulted before work starts, so an already-expired deadline fails fast.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - name: The operation identifier (see Registry.List).
//   - operands: The textual operands, one decimal integer each.
//
// Returns:
//   - []bigint.Int: The operation's results (most operations return one
//     value; divmod returns quotient then remainder).
//   - error: A ConfigError for unknown names or wrong arity, a FormatError
//     for malformed operands, or the operation's own typed failure.
func (e *Evaluator) Evaluate(ctx context.Context, name string, operands ...string) (results []bigint.Int, err error) {
	tracer := otel.Tracer("omnicalc/calc")
	_, span := tracer.Start(ctx, "Evaluate")
	span.SetAttributes(attribute.String("op", name), attribute.Int("operands", len(operands)))
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		operationsTotal.WithLabelValues(name, status).Inc()
		operationDuration.WithLabelValues(name).Observe(duration)
		e.logger.Debug("operation evaluated",
			logging.String("op", name),
			logging.Float64("duration", duration),
			logging.String("status", status),
		)
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	op, err := e.registry.Get(name)
	if err != nil {
		return nil, err
	}
	if len(operands) != op.Arity {
		return nil, apperrors.NewConfigError(
			"operation %q expects %d operand(s), got %d", name, op.Arity, len(operands))
	}

	args := make([]bigint.Int, len(operands))
	for i, text := range operands {
		args[i], err = bigint.Parse(text)
		if err != nil {
			return nil, err
		}
	}

	return op.Apply(args)
}
