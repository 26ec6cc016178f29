package bigint

import (
	"math"

	apperrors "github.com/agbru/omnicalc/internal/errors"
)

// The int64 boundary values as arbitrary-precision integers. Range checks
// compare against these directly; digit-count heuristics are insufficient
// near the boundary.
var (
	minInt64 = New(math.MinInt64)
	maxInt64 = New(math.MaxInt64)
)

// Int64 converts the value to a fixed-width int64.
//
// The value is first compared against the int64 boundary constants; anything
// outside fails with apperrors.OverflowError. Within range, the digits are
// accumulated most significant first into an unsigned accumulator wide enough
// for the minimum value's magnitude, and the sign is applied last.
//
// Returns:
//   - int64: The converted value.
//   - error: An OverflowError if the value does not fit in an int64.
func (x Int) Int64() (int64, error) {
	if x.Cmp(minInt64) < 0 || x.Cmp(maxInt64) > 0 {
		return 0, apperrors.OverflowError{Value: x.String(), Target: "int64"}
	}
	var mag uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		mag = mag*10 + uint64(x.digits[i])
	}
	if x.neg {
		if mag == uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
		return -int64(mag), nil
	}
	return int64(mag), nil
}
