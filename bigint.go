package bigint

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An integer is a struct with two parameters:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: a sequence of base-10^6 limbs, least significant first.
//
// One important aspect of the integer is that it does not support
// signed zeros: negating 0 yields 0.
type Int struct {
	neg bool // indicates whether the integer is negative
	abs nat  // the magnitude of the integer
}

const (
	MaxDigits = 30_000                 // maximum number of decimal digits in the magnitude
	maxLimbs  = MaxDigits / limbDigits // maximum number of limbs in the magnitude
)

var (
	// ErrOverflow is returned when the magnitude of a result has more
	// than [MaxDigits] digits.
	ErrOverflow = errors.New("integer overflow")
	// ErrDivisionByZero is returned when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidSyntax is returned when a string does not represent
	// a decimal integer.
	ErrInvalidSyntax = errors.New("invalid integer")
)

var (
	Zero = New(0) // Zero represents the integer value 0.
	One  = New(1) // One represents the integer value 1.
	Two  = New(2) // Two represents the integer value 2.
)

// newInt normalizes abs and checks that it fits into [MaxDigits].
func newInt(neg bool, abs nat) (Int, error) {
	abs = abs.norm()
	if len(abs) > maxLimbs {
		return Int{}, errors.Wrapf(ErrOverflow, "the result has %v digit(s), but a %T can have at most %v digit(s)", abs.prec(), Int{}, MaxDigits)
	}
	if abs.isZero() {
		neg = false
	}
	return Int{neg: neg, abs: abs}, nil
}

// New returns an integer equal to v.
func New(v int64) Int {
	if v == math.MinInt64 {
		return Int{neg: true, abs: natFromUint64(uint64(math.MaxInt64) + 1)}
	}
	neg := v < 0
	if neg {
		v = -v
	}
	return Int{neg: neg, abs: natFromUint64(uint64(v))}
}

// NewFromUint64 returns an integer equal to u.
func NewFromUint64(u uint64) Int {
	return Int{abs: natFromUint64(u)}
}

// Parse converts a string to an integer.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	+0001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros.
//
// Parse returns error:
//   - if string does not represent a valid integer;
//   - if the result has more than [MaxDigits] significant digits.
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Digits
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}

	if pos != width {
		return Int{}, errors.Wrapf(ErrInvalidSyntax, "invalid character %q", s[pos])
	}
	if pos == start {
		return Int{}, errors.Wrapf(ErrInvalidSyntax, "no digits in %q", s)
	}

	// Leading zeros
	for start < width-1 && s[start] == '0' {
		start++
	}
	if n := width - start; n > MaxDigits {
		return Int{}, errors.Wrapf(ErrOverflow, "%q has %v digit(s), but a %T can have at most %v digit(s)", truncate(s), n, Int{}, MaxDigits)
	}

	return newInt(neg, parseDigits(s[start:]))
}

// truncate shortens long inputs for error messages.
func truncate(s string) string {
	const n = 24
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", truncate(s), err))
	}
	return d
}

// mag returns the magnitude of d, treating the zero value as 0.
func (d Int) mag() nat {
	if len(d.abs) == 0 {
		return nat{0}
	}
	return d.abs
}

// Clone returns a deep copy of d.
func (d Int) Clone() Int {
	return Int{neg: d.neg, abs: d.mag().clone()}
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer value.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Int) String() string {
	abs := d.mag()
	buf := make([]byte, 0, 1+abs.limbs()*limbDigits)
	if d.IsNeg() {
		buf = append(buf, '-')
	}
	return string(abs.appendDecimal(buf))
}

// Prec returns number of decimal digits in the magnitude of d.
// The precision of 0 is 0.
func (d Int) Prec() int {
	return d.mag().prec()
}

// Int64 returns d as int64.
// If d does not fit into int64, the result is undefined and ok is false.
func (d Int) Int64() (i int64, ok bool) {
	u, ok := d.mag().uint64()
	switch {
	case !ok:
		return 0, false
	case d.IsNeg() && u == uint64(math.MaxInt64)+1:
		return math.MinInt64, true
	case u > math.MaxInt64:
		return 0, false
	case d.IsNeg():
		return -int64(u), true
	}
	return int64(u), true
}

// Pos returns d unchanged. It is the unary plus.
func (d Int) Pos() Int {
	return d
}

// Neg returns d with opposite sign.
// Negation of 0 is 0.
func (d Int) Neg() Int {
	if d.IsZero() {
		return Int{abs: d.mag()}
	}
	return Int{neg: !d.neg, abs: d.abs}
}

// Abs returns absolute value of d.
func (d Int) Abs() Int {
	return Int{abs: d.mag()}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Int) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Int) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsNeg returns true if d < 0.
func (d Int) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Int) IsZero() bool {
	return d.abs.isZero()
}

// Bool returns true if d != 0.
func (d Int) Bool() bool {
	return !d.IsZero()
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Int) Cmp(e Int) int {
	// Special case: different signs
	switch {
	case !d.IsNeg() && e.IsNeg():
		return 1
	case d.IsNeg() && !e.IsNeg():
		return -1
	}

	// General case
	r := d.mag().cmp(e.mag())
	if d.IsNeg() {
		return -r
	}
	return r
}

// Equal returns true if d and e have the same sign and magnitude.
func (d Int) Equal(e Int) bool {
	x, y := d.mag(), e.mag()
	if len(x) != len(y) || d.IsNeg() != e.IsNeg() {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Greater returns true if d > e.
func (d Int) Greater(e Int) bool {
	return d.Cmp(e) > 0
}

// Less returns true if d < e.
func (d Int) Less(e Int) bool {
	return d.Cmp(e) < 0
}

// GreaterOrEqual returns true if d >= e.
func (d Int) GreaterOrEqual(e Int) bool {
	return d.Cmp(e) >= 0
}

// LessOrEqual returns true if d <= e.
func (d Int) LessOrEqual(e Int) bool {
	return d.Cmp(e) <= 0
}

// Max returns maximum of d and e.
func (d Int) Max(e Int) Int {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d Int) Min(e Int) Int {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
