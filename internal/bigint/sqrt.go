package bigint

import (
	apperrors "github.com/agbru/omnicalc/internal/errors"
)

// Sqrt returns the integer square root of n, the largest value r such that
// r*r <= n.
//
// The iteration starts from 10^ceil(d/2), where d is the decimal digit count
// of n. A d-digit number's root has at most ceil(d/2) digits, so this bound
// is always an overestimate of the true root; from an overestimate the
// integer Newton step x' = (x + n/x) / 2 is monotonically non-increasing,
// making "no further decrease" a safe termination condition. The fixed point
// can land one unit above the floor root, so a final x*x > n check decrements
// once.
//
// Parameters:
//   - n: The radicand; must be non-negative.
//
// Returns:
//   - Int: The floor of the square root of n.
//   - error: A NegativeSqrtError if n is negative.
func Sqrt(n Int) (Int, error) {
	if n.Sign() < 0 {
		return Int{}, apperrors.NegativeSqrtError{Value: n.String()}
	}
	if n.IsZero() {
		return zero(), nil
	}

	exp := (n.DigitCount() + 1) / 2
	digits := make([]int8, exp+1)
	digits[exp] = 1
	x := Int{digits: digits}

	two := New(2)
	for {
		// Divisors are strictly positive here, so QuoRem cannot fail.
		q, _, _ := n.QuoRem(x)
		next, _, _ := x.Add(q).QuoRem(two)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}
	if x.Mul(x).Cmp(n) > 0 {
		x = x.Sub(New(1))
	}
	return x, nil
}
