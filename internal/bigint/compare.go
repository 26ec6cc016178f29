package bigint

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, and +1 if
// x > y.
//
// The comparison first separates operands by sign (zero counts as
// non-negative), then compares magnitudes by digit count and finally digit
// by digit from the most significant position. When both operands are
// negative the magnitude ordering is inverted.
func (x Int) Cmp(y Int) int {
	xNonNeg, yNonNeg := !x.neg, !y.neg
	if xNonNeg && !yNonNeg {
		return 1
	}
	if !xNonNeg && yNonNeg {
		return -1
	}
	// Both zero compares equal even under a (normally unreachable) stored
	// negative zero.
	if x.IsZero() && y.IsZero() {
		return 0
	}
	scale := 1
	if x.neg {
		scale = -1
	}
	return scale * compareMagnitude(x.digits, y.digits)
}

// compareMagnitude compares two trimmed digit vectors as non-negative
// integers. With no most-significant zero padding, a longer vector is always
// the larger value.
func compareMagnitude(a, b []int8) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x == y.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Int) Less(y Int) bool { return x.Cmp(y) < 0 }

// LessEqual reports whether x <= y.
func (x Int) LessEqual(y Int) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x Int) Greater(y Int) bool { return x.Cmp(y) > 0 }

// GreaterEqual reports whether x >= y.
func (x Int) GreaterEqual(y Int) bool { return x.Cmp(y) >= 0 }
