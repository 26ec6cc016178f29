package bigint

// Mul returns the product x * y using schoolbook multiplication.
//
// Every pairwise digit product a[i]*b[j] is accumulated into result slot
// i+j, allowing transient values above 9; a single left-to-right carry
// resolution pass then converts each slot back to canonical base 10. The
// result sign is positive exactly when the operand signs agree, and a zero
// operand short-circuits to zero.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return zero()
	}
	// acc uses a wider element type: a slot accumulates up to
	// min(len(x),len(y)) products of at most 81 plus a propagated carry.
	acc := make([]int64, len(x.digits)+len(y.digits))
	for i, xd := range x.digits {
		for j, yd := range y.digits {
			acc[i+j] += int64(xd) * int64(yd)
		}
	}
	digits := make([]int8, 0, len(acc)+1)
	carry := int64(0)
	for _, slot := range acc {
		v := slot + carry
		digits = append(digits, int8(v%10))
		carry = v / 10
	}
	for carry > 0 {
		digits = append(digits, int8(carry%10))
		carry /= 10
	}
	r := Int{digits: digits, neg: x.neg != y.neg}
	r.normalize()
	return r
}
