package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"format", FormatError{Input: "12x"}, `invalid decimal integer "12x"`},
		{"division by zero", DivisionByZeroError{}, "division by zero"},
		{"negative sqrt", NegativeSqrtError{Value: "-4"}, "square root of negative number -4"},
		{"overflow", OverflowError{Value: "9223372036854775808", Target: "int64"}, "value 9223372036854775808 overflows int64"},
		{"config", NewConfigError("bad port %q", "http"), `bad port "http"`},
		{"server without cause", ServerError{Message: "listen failed"}, "listen failed"},
		{"server with cause", NewServerError("listen failed", errors.New("address in use")), "listen failed: address in use"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestServerError_Unwrap(t *testing.T) {
	cause := errors.New("address in use")
	err := NewServerError("listen failed", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := DivisionByZeroError{}
	wrapped := WrapError(base, "evaluating %s", "quo")
	if !strings.Contains(wrapped.Error(), "evaluating quo") {
		t.Errorf("wrapped message = %q", wrapped.Error())
	}
	var dz DivisionByZeroError
	if !errors.As(wrapped, &dz) {
		t.Error("errors.As should find the wrapped DivisionByZeroError")
	}
}

func TestIsContextError(t *testing.T) {
	if !IsContextError(context.Canceled) || !IsContextError(context.DeadlineExceeded) {
		t.Error("context errors not recognized")
	}
	if IsContextError(errors.New("other")) || IsContextError(nil) {
		t.Error("non-context errors misclassified")
	}
	wrapped := fmt.Errorf("evaluation aborted: %w", context.Canceled)
	if !IsContextError(wrapped) {
		t.Error("wrapped context error not recognized")
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"cancel", context.Canceled, ExitErrorCancel},
		{"timeout", context.DeadlineExceeded, ExitErrorCancel},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"format", FormatError{Input: "x"}, ExitErrorInput},
		{"division by zero", DivisionByZeroError{}, ExitErrorInput},
		{"negative sqrt", NegativeSqrtError{Value: "-1"}, ExitErrorInput},
		{"overflow", OverflowError{Value: "x", Target: "int64"}, ExitErrorInput},
		{"wrapped input error", WrapError(DivisionByZeroError{}, "evaluating"), ExitErrorInput},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCodeFor(tc.err); got != tc.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
