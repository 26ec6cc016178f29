// Package calc exposes the bigint arithmetic surface as a registry of named
// operations. The CLI, the REPL, and the HTTP server all resolve operations
// by name through this package, so the three consumers stay in lockstep
// about what the calculator can do.
package calc

import (
	"sort"
	"sync"

	"github.com/agbru/omnicalc/internal/bigint"
	apperrors "github.com/agbru/omnicalc/internal/errors"
)

// Operation describes a single named calculator operation.
type Operation struct {
	// Name is the identifier used by the CLI, REPL, and HTTP API.
	Name string
	// Arity is the exact number of operands the operation expects.
	Arity int
	// Description is a one-line human-readable summary for help output.
	Description string
	// Apply executes the operation on already-parsed operands. The slice
	// length equals Arity. Operations may return more than one value
	// (divmod returns the quotient and the remainder from a single pass).
	Apply func(args []bigint.Int) ([]bigint.Int, error)
}

// Registry is a thread-safe collection of named operations.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewRegistry creates a Registry with the standard calculator operations
// pre-registered.
//
// Returns:
//   - *Registry: A new registry with default operations registered.
func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Operation)}
	for _, op := range defaultOperations() {
		r.Register(op)
	}
	return r
}

// Register adds an operation to the registry, replacing any existing
// operation with the same name.
func (r *Registry) Register(op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name] = op
}

// Get returns the operation registered under name.
//
// Parameters:
//   - name: The operation identifier.
//
// Returns:
//   - Operation: The registered operation.
//   - error: A ConfigError if no operation with that name exists.
func (r *Registry) Get(name string) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	if !ok {
		return Operation{}, apperrors.NewConfigError("unknown operation %q", name)
	}
	return op, nil
}

// List returns the sorted names of all registered operations.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered operations keyed by name.
func (r *Registry) All() map[string]Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Operation, len(r.ops))
	for name, op := range r.ops {
		out[name] = op
	}
	return out
}

func defaultOperations() []Operation {
	return []Operation{
		{
			Name: "add", Arity: 2, Description: "Sum of a and b",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{args[0].Add(args[1])}, nil
			},
		},
		{
			Name: "sub", Arity: 2, Description: "Difference a - b",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{args[0].Sub(args[1])}, nil
			},
		},
		{
			Name: "mul", Arity: 2, Description: "Product of a and b",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{args[0].Mul(args[1])}, nil
			},
		},
		{
			Name: "quo", Arity: 2, Description: "Quotient a / b, truncated toward zero",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				q, err := args[0].Quo(args[1])
				if err != nil {
					return nil, err
				}
				return []bigint.Int{q}, nil
			},
		},
		{
			Name: "rem", Arity: 2, Description: "Remainder a % b (sign follows a)",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				r, err := args[0].Rem(args[1])
				if err != nil {
					return nil, err
				}
				return []bigint.Int{r}, nil
			},
		},
		{
			Name: "divmod", Arity: 2, Description: "Quotient and remainder from one division pass",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				q, r, err := args[0].QuoRem(args[1])
				if err != nil {
					return nil, err
				}
				return []bigint.Int{q, r}, nil
			},
		},
		{
			Name: "sqrt", Arity: 1, Description: "Integer square root (floor)",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				r, err := bigint.Sqrt(args[0])
				if err != nil {
					return nil, err
				}
				return []bigint.Int{r}, nil
			},
		},
		{
			Name: "gcd", Arity: 2, Description: "Greatest common divisor (non-negative)",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{bigint.GCD(args[0], args[1])}, nil
			},
		},
		{
			Name: "cmp", Arity: 2, Description: "Three-way comparison: -1, 0, or 1",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{bigint.New(int64(args[0].Cmp(args[1])))}, nil
			},
		},
		{
			Name: "neg", Arity: 1, Description: "Additive inverse of a",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{args[0].Neg()}, nil
			},
		},
		{
			Name: "abs", Arity: 1, Description: "Absolute value of a",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{args[0].Abs()}, nil
			},
		},
		{
			Name: "digits", Arity: 1, Description: "Number of decimal digits, ignoring sign",
			Apply: func(args []bigint.Int) ([]bigint.Int, error) {
				return []bigint.Int{bigint.New(int64(args[0].DigitCount()))}, nil
			},
		},
	}
}
