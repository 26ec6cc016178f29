package bigint

import (
	apperrors "github.com/agbru/omnicalc/internal/errors"
)

// QuoRem returns the quotient and remainder of x divided by y in a single
// long-division pass, so that both projections always satisfy
//
//	x == q*y + r
//
// under the same normalization. Division truncates toward zero: the quotient
// sign is positive exactly when the operand signs agree, and the remainder
// takes the dividend's sign (or is zero). The remainder magnitude is always
// strictly smaller than the divisor magnitude.
//
// Parameters:
//   - y: The divisor.
//
// Returns:
//   - Int: The quotient, truncated toward zero.
//   - Int: The remainder, with sign(r) == sign(x) or r == 0.
//   - error: A DivisionByZeroError if y is zero.
func (x Int) QuoRem(y Int) (Int, Int, error) {
	if y.IsZero() {
		return Int{}, Int{}, apperrors.DivisionByZeroError{}
	}
	if compareMagnitude(x.digits, y.digits) < 0 {
		// |x| < |y|: quotient zero, remainder is the dividend unchanged.
		return zero(), x.clone(), nil
	}

	// Precompute the multiples 1x..9x of the divisor magnitude once; each
	// quotient digit is then found by a bounded binary search over these ten
	// candidates instead of up to nine magnitude subtractions.
	divisor := y.Abs()
	multiples := make([]Int, 10)
	multiples[0] = zero()
	for d := 1; d <= 9; d++ {
		multiples[d] = multiples[d-1].Add(divisor)
	}

	// Quotient digits are emitted most significant first and reversed into
	// least-significant-first storage after the pass.
	quot := make([]int8, 0, len(x.digits))
	rem := zero()
	for i := len(x.digits) - 1; i >= 0; i-- {
		rem = shiftInDigit(rem, x.digits[i])
		d := largestFittingMultiple(multiples, rem)
		if d > 0 {
			rem = Int{digits: subMagnitude(rem.digits, multiples[d].digits)}
			rem.normalize()
		}
		quot = append(quot, int8(d))
	}
	for i, j := 0, len(quot)-1; i < j; i, j = i+1, j-1 {
		quot[i], quot[j] = quot[j], quot[i]
	}

	q := Int{digits: quot, neg: x.neg != y.neg}
	q.normalize()
	rem.neg = x.neg
	rem.normalize()
	return q, rem, nil
}

// Quo returns the quotient x / y, truncated toward zero.
// It is a projection of QuoRem; both outputs come from the same pass.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder x % y under truncating division, with
// sign(r) == sign(x) or r == 0.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// shiftInDigit returns r*10 + d for a non-negative running remainder.
// Shifting a zero remainder just installs the digit, keeping the canonical
// single-digit form for zero.
func shiftInDigit(r Int, d int8) Int {
	if r.IsZero() {
		return Int{digits: []int8{d}}
	}
	digits := make([]int8, len(r.digits)+1)
	digits[0] = d
	copy(digits[1:], r.digits)
	return Int{digits: digits}
}

// largestFittingMultiple returns the largest d in [0,9] such that
// multiples[d] <= rem, using binary search over the precomputed candidates.
// multiples[0] is zero, so the search always succeeds.
func largestFittingMultiple(multiples []Int, rem Int) int {
	lo, hi := 0, 9
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if compareMagnitude(multiples[mid].digits, rem.digits) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
