// Package bigint implements an arbitrary-precision signed decimal integer.
//
// The Int type supports the full arithmetic, comparison, and conversion
// surface expected of a built-in integer, but with unbounded magnitude. All
// operations are pure functions of their operands unless documented as
// in-place; results never alias operand storage, so values can be freely
// retained and read concurrently. In-place mutation of a single Int from
// multiple goroutines must be serialized by the caller.
//
// Representation: base-10 digits stored least-significant first, plus a sign
// flag. Every operation leaves its result in canonical form: no trailing
// (most-significant) zero digits, at least one digit, and zero always
// non-negative. Structural equality of the representation therefore
// coincides with numeric equality.
package bigint

import (
	"strings"

	apperrors "github.com/agbru/omnicalc/internal/errors"
)

// Int is an arbitrary-precision signed decimal integer.
// The zero value of the type is not canonical; use New, Parse, or the
// package-level zero() helper to obtain valid instances. All exported
// operations return canonical values.
type Int struct {
	// digits holds the base-10 digits of the magnitude, least significant
	// first. Canonical form has no trailing zeros except for the single-digit
	// representation of zero itself.
	digits []int8
	// neg is true for strictly negative values. Zero is never negative.
	neg bool
}

// zero returns the canonical zero value.
func zero() Int {
	return Int{digits: []int8{0}}
}

// New creates an Int from a fixed-width signed integer.
//
// The minimum representable value is handled by extracting the magnitude in
// an unsigned type before negation; naively negating math.MinInt64 would
// overflow the signed range.
//
// Parameters:
//   - n: The value to convert.
//
// Returns:
//   - Int: The canonical arbitrary-precision rendition of n.
func New(n int64) Int {
	neg := n < 0
	// Two's complement: uint64(-n) is well defined even for MinInt64.
	mag := uint64(n)
	if neg {
		mag = -mag
	}
	if mag == 0 {
		return zero()
	}
	digits := make([]int8, 0, 20)
	for mag > 0 {
		digits = append(digits, int8(mag%10))
		mag /= 10
	}
	return Int{digits: digits, neg: neg}
}

// Parse creates an Int from decimal text.
//
// The accepted grammar is an optional '+' or '-' sign followed by one or more
// ASCII digits. Parsing fails with apperrors.FormatError when the input is
// empty, is a bare sign, or contains any other character.
//
// Parameters:
//   - s: The text to parse.
//
// Returns:
//   - Int: The parsed value in canonical form ("+100" parses to 100,
//     "-0" parses to 0).
//   - error: A FormatError if the text is not a valid decimal integer.
func Parse(s string) (Int, error) {
	body := s
	neg := false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}
	if len(body) == 0 {
		return Int{}, apperrors.FormatError{Input: s}
	}
	digits := make([]int8, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return Int{}, apperrors.FormatError{Input: s}
		}
		// Text is most-significant first; storage is least-significant first.
		digits[len(body)-1-i] = int8(c - '0')
	}
	x := Int{digits: digits, neg: neg}
	x.normalize()
	return x, nil
}

// MustParse is like Parse but panics on invalid input. It is intended for
// literals in tests and package initialization.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String renders the value as canonical decimal text: an optional leading
// '-' followed by the digits most-significant first, with no leading zeros
// and no grouping. Zero renders as "0".
func (x Int) String() string {
	var b strings.Builder
	b.Grow(len(x.digits) + 1)
	if x.neg {
		b.WriteByte('-')
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		b.WriteByte(byte('0' + x.digits[i]))
	}
	return b.String()
}

// DigitCount returns the number of decimal digits of the magnitude, ignoring
// the sign. Zero has a digit count of 1.
func (x Int) DigitCount() int {
	return len(x.digits)
}

// IsZero reports whether the value is zero.
func (x Int) IsZero() bool {
	return len(x.digits) == 1 && x.digits[0] == 0
}

// IsEven reports whether the value is even. Zero is even.
func (x Int) IsEven() bool {
	return x.digits[0]%2 == 0
}

// Sign returns -1 for negative values, 0 for zero, and +1 for positive
// values.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns the additive inverse of x. Negating zero yields zero; no
// negative zero can be produced.
func (x Int) Neg() Int {
	if x.IsZero() {
		return x.clone()
	}
	r := x.clone()
	r.neg = !x.neg
	return r
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int {
	r := x.clone()
	r.neg = false
	return r
}

// clone returns a deep copy of x. Results of exported operations never share
// digit storage with their operands, so a later in-place mutation of one
// cannot corrupt the other.
func (x Int) clone() Int {
	digits := make([]int8, len(x.digits))
	copy(digits, x.digits)
	return Int{digits: digits, neg: x.neg}
}

// trim removes trailing (most-significant) zero digits down to a minimum
// length of one digit.
func (x *Int) trim() {
	n := len(x.digits)
	for n > 1 && x.digits[n-1] == 0 {
		n--
	}
	x.digits = x.digits[:n]
}

// normalize re-establishes the canonical-form invariants: trimmed magnitude
// and non-negative zero.
func (x *Int) normalize() {
	x.trim()
	if x.IsZero() {
		x.neg = false
	}
}
