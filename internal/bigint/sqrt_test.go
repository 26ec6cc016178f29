package bigint

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/omnicalc/internal/errors"
)

func TestSqrt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    string
		want string
	}{
		{"zero", "0", "0"},
		{"one", "1", "1"},
		{"perfect square", "100", "10"},
		{"truncation", "99", "9"},
		{"just above square", "101", "10"},
		{"two", "2", "1"},
		{"three", "3", "1"},
		{"four", "4", "2"},
		{"large perfect square", "12345678987654321", "111111111"},
		{"large", "98765432109876543210", "9938079900"},
		{"power of ten", "10000000000000000000000000000000000000000", "100000000000000000000"},
		{"power of ten minus one", "9999999999999999999999999999999999999999", "99999999999999999999"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Sqrt(MustParse(tc.n))
			if err != nil {
				t.Fatalf("Sqrt(%s) failed: %v", tc.n, err)
			}
			if got.String() != tc.want {
				t.Errorf("Sqrt(%s) = %s, want %s", tc.n, got, tc.want)
			}
			// Floor-root bound: r^2 <= n < (r+1)^2.
			n := MustParse(tc.n)
			if got.Mul(got).Greater(n) {
				t.Errorf("Sqrt(%s) = %s overshoots: square exceeds n", tc.n, got)
			}
			next := got.Add(New(1))
			if !next.Mul(next).Greater(n) {
				t.Errorf("Sqrt(%s) = %s undershoots: (r+1)^2 <= n", tc.n, got)
			}
		})
	}
}

func TestSqrt_NegativeInput(t *testing.T) {
	t.Parallel()

	for _, n := range []string{"-1", "-98765432109876543210"} {
		_, err := Sqrt(MustParse(n))
		if err == nil {
			t.Fatalf("Sqrt(%s) succeeded, want error", n)
		}
		var de apperrors.NegativeSqrtError
		if !errors.As(err, &de) {
			t.Errorf("Sqrt(%s) error = %T, want NegativeSqrtError", n, err)
		}
	}
}
