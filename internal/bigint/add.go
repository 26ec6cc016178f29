package bigint

// Add returns the sum x + y.
//
// Operands with the same sign are combined by magnitude addition with carry
// propagation; mixed signs reduce to a magnitude subtraction via
// x + y = x - (-y).
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		r := Int{digits: addMagnitude(x.digits, y.digits), neg: x.neg}
		r.normalize()
		return r
	}
	return x.Sub(y.Neg())
}

// Sub returns the difference x - y.
//
// Mixed signs reduce to addition via x - y = x + (-y). For operands of the
// same sign the smaller magnitude is always subtracted from the larger one,
// flipping the result sign when the operands had to be swapped; the borrow
// chain therefore never runs across the wrong operand order.
func (x Int) Sub(y Int) Int {
	if x.neg != y.neg {
		return x.Add(y.Neg())
	}
	var r Int
	if compareMagnitude(x.digits, y.digits) < 0 {
		r = Int{digits: subMagnitude(y.digits, x.digits), neg: !x.neg}
	} else {
		r = Int{digits: subMagnitude(x.digits, y.digits), neg: x.neg}
	}
	r.normalize()
	return r
}

// addMagnitude adds two digit vectors as non-negative integers, least
// significant digit first, and returns a freshly allocated result.
func addMagnitude(a, b []int8) []int8 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int8, 0, n+1)
	carry := int8(0)
	for i := 0; i < n || carry != 0; i++ {
		sum := carry
		if i < len(a) {
			sum += a[i]
		}
		if i < len(b) {
			sum += b[i]
		}
		out = append(out, sum%10)
		carry = sum / 10
	}
	return out
}

// subMagnitude subtracts digit vector b from a with borrow propagation.
// The caller must guarantee that a >= b as non-negative integers. The result
// may carry trailing zeros and is trimmed by the caller's normalize.
func subMagnitude(a, b []int8) []int8 {
	out := make([]int8, 0, len(a))
	borrow := int8(0)
	for i := 0; i < len(a); i++ {
		diff := a[i] - borrow
		if i < len(b) {
			diff -= b[i]
		}
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out = append(out, diff)
	}
	return out
}
