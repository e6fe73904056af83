package bigint

import (
	"github.com/cockroachdb/errors"
)

// Add returns the sum of d and e.
//
// Add returns an overflow error if the sum has more than [MaxDigits] digits.
func (d Int) Add(e Int) (Int, error) {
	x, y := d.mag(), e.mag()

	// Same signs
	if d.IsNeg() == e.IsNeg() {
		return newInt(d.IsNeg(), x.add(y))
	}

	// Different signs
	switch x.cmp(y) {
	case 1:
		return newInt(d.IsNeg(), x.sub(y))
	case -1:
		return newInt(e.IsNeg(), y.sub(x))
	}
	return Int{abs: nat{0}}, nil
}

// Sub returns the difference of d and e.
//
// Sub returns an overflow error if the difference has more than [MaxDigits] digits.
func (d Int) Sub(e Int) (Int, error) {
	return d.Add(e.Neg())
}

// Mul returns the product of d and e.
//
// Mul returns an overflow error if the product has more than [MaxDigits] digits.
func (d Int) Mul(e Int) (Int, error) {
	x, y := d.mag(), e.mag()

	// Special case: zero factor
	if x.isZero() || y.isZero() {
		return Int{abs: nat{0}}, nil
	}

	// Special case: the product cannot fit
	if len(x)+len(y)-1 > maxLimbs {
		return Int{}, errors.Wrapf(ErrOverflow, "the product has at least %v digit(s), but a %T can have at most %v digit(s)", x.prec()+y.prec()-1, Int{}, MaxDigits)
	}

	return newInt(d.IsNeg() != e.IsNeg(), x.mul(y))
}

// Quo returns the quotient of d and e truncated toward zero,
// which matches the behavior of the Go / operator on integers.
// Dividing by 2 takes a fast path that halves the magnitude in a single pass.
//
// Quo returns an error if the divisor is 0.
func (d Int) Quo(e Int) (Int, error) {
	q, _, err := d.QuoRem(e)
	return q, err
}

// Rem returns the remainder d - (d / e) * e.
// The remainder has the sign of d, which matches the behavior of
// the Go % operator on integers.
//
// Rem returns an error if the divisor is 0.
func (d Int) Rem(e Int) (Int, error) {
	_, r, err := d.QuoRem(e)
	return r, err
}

// QuoRem returns the quotient q and remainder r of d and e such that
// d = q * e + r, where q is truncated toward zero and r has the sign of d.
//
// QuoRem returns an error if the divisor is 0.
func (d Int) QuoRem(e Int) (q, r Int, err error) {
	x, y := d.mag(), e.mag()
	if y.isZero() {
		return Int{}, Int{}, errors.Wrapf(ErrDivisionByZero, "%v / %v", d, e)
	}
	qabs, rabs := x.quoRem(y)
	q, err = newInt(d.IsNeg() != e.IsNeg(), qabs)
	if err != nil {
		return Int{}, Int{}, err // unexpected by design
	}
	r, err = newInt(d.IsNeg(), rabs)
	if err != nil {
		return Int{}, Int{}, err // unexpected by design
	}
	return q, r, nil
}

// AddInt64 returns the sum of d and v.
// Use New(v).Add(d) for the reversed operand order.
func (d Int) AddInt64(v int64) (Int, error) {
	return d.Add(New(v))
}

// SubInt64 returns the difference of d and v.
// Use New(v).Sub(d) for the reversed operand order.
func (d Int) SubInt64(v int64) (Int, error) {
	return d.Sub(New(v))
}

// MulInt64 returns the product of d and v.
// Use New(v).Mul(d) for the reversed operand order.
func (d Int) MulInt64(v int64) (Int, error) {
	return d.Mul(New(v))
}

// QuoInt64 returns the quotient of d and v, see [Int.Quo].
// Use New(v).Quo(d) for the reversed operand order.
func (d Int) QuoInt64(v int64) (Int, error) {
	return d.Quo(New(v))
}

// RemInt64 returns the remainder of d and v, see [Int.Rem].
// Use New(v).Rem(d) for the reversed operand order.
func (d Int) RemInt64(v int64) (Int, error) {
	return d.Rem(New(v))
}

// assign replaces z with the result of op if op succeeds.
// On error z is left unchanged.
func (z *Int) assign(op func(Int) (Int, error), e Int) error {
	f, err := op(e)
	if err != nil {
		return err
	}
	*z = f
	return nil
}

// AddAssign sets z to z + e.
func (z *Int) AddAssign(e Int) error {
	return z.assign(z.Add, e)
}

// SubAssign sets z to z - e.
func (z *Int) SubAssign(e Int) error {
	return z.assign(z.Sub, e)
}

// MulAssign sets z to z * e.
func (z *Int) MulAssign(e Int) error {
	return z.assign(z.Mul, e)
}

// QuoAssign sets z to z / e.
func (z *Int) QuoAssign(e Int) error {
	return z.assign(z.Quo, e)
}

// RemAssign sets z to z % e.
func (z *Int) RemAssign(e Int) error {
	return z.assign(z.Rem, e)
}

// AddAssignInt64 sets z to z + v.
func (z *Int) AddAssignInt64(v int64) error {
	return z.AddAssign(New(v))
}

// SubAssignInt64 sets z to z - v.
func (z *Int) SubAssignInt64(v int64) error {
	return z.SubAssign(New(v))
}

// MulAssignInt64 sets z to z * v.
func (z *Int) MulAssignInt64(v int64) error {
	return z.MulAssign(New(v))
}

// QuoAssignInt64 sets z to z / v.
func (z *Int) QuoAssignInt64(v int64) error {
	return z.QuoAssign(New(v))
}

// RemAssignInt64 sets z to z % v.
func (z *Int) RemAssignInt64(v int64) error {
	return z.RemAssign(New(v))
}

// Inc sets z to z + 1.
func (z *Int) Inc() error {
	return z.AddAssign(One)
}

// Dec sets z to z - 1.
func (z *Int) Dec() error {
	return z.SubAssign(One)
}

// PostInc sets z to z + 1 and returns the previous value of z.
func (z *Int) PostInc() (Int, error) {
	prev := *z
	if err := z.Inc(); err != nil {
		return Int{}, err
	}
	return prev, nil
}

// PostDec sets z to z - 1 and returns the previous value of z.
func (z *Int) PostDec() (Int, error) {
	prev := *z
	if err := z.Dec(); err != nil {
		return Int{}, err
	}
	return prev, nil
}
