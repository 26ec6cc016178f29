package bigint

// In-place compound forms of the binary operators. Each one mutates only its
// receiver and never an operand; the receiver is replaced wholesale with a
// freshly computed canonical value.

// AddAssign sets x to x + y.
func (x *Int) AddAssign(y Int) { *x = x.Add(y) }

// SubAssign sets x to x - y.
func (x *Int) SubAssign(y Int) { *x = x.Sub(y) }

// MulAssign sets x to x * y.
func (x *Int) MulAssign(y Int) { *x = x.Mul(y) }

// QuoAssign sets x to x / y. On a zero divisor the receiver is left
// unchanged and a DivisionByZeroError is returned.
func (x *Int) QuoAssign(y Int) error {
	q, err := x.Quo(y)
	if err != nil {
		return err
	}
	*x = q
	return nil
}

// RemAssign sets x to x % y. On a zero divisor the receiver is left
// unchanged and a DivisionByZeroError is returned.
func (x *Int) RemAssign(y Int) error {
	r, err := x.Rem(y)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

// Inc increments x by one.
func (x *Int) Inc() { *x = x.Add(intOne) }

// Dec decrements x by one.
func (x *Int) Dec() { *x = x.Sub(intOne) }

// intOne is shared by Inc and Dec. Pure operations never mutate operand
// storage, so the shared digits are safe.
var intOne = Int{digits: []int8{1}}
