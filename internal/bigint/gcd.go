package bigint

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm on their absolute values. The result is always non-negative and
// GCD(0, 0) is 0.
//
// Termination relies on the division core's guarantee that the remainder
// magnitude is strictly smaller than the divisor magnitude at every step.
func GCD(a, b Int) Int {
	x, y := a.Abs(), b.Abs()
	for !y.IsZero() {
		// y is non-zero here, so QuoRem cannot fail.
		_, r, _ := x.QuoRem(y)
		x, y = y, r
	}
	return x
}
