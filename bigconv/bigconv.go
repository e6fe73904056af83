// Package bigconv converts between [bigint.Int] and other arbitrary-precision
// number types: [big.Int], shopspring [decimal.Decimal] and cockroachdb [apd.Decimal].
//
// Conversions into [bigint.Int] are exact. Decimal values must be integral,
// and all results are subject to the [bigint.MaxDigits] ceiling.
//
// [big.Int]: https://pkg.go.dev/math/big#Int
// [decimal.Decimal]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal
// [apd.Decimal]: https://pkg.go.dev/github.com/cockroachdb/apd/v3#Decimal
package bigconv

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/govalues/bigint"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotInteger is returned when a decimal has a non-zero fractional part.
	ErrNotInteger = errors.New("not an integer")
	// ErrNotFinite is returned for NaN and infinite decimals.
	ErrNotFinite = errors.New("not a finite number")
)

var bigTen = big.NewInt(10)

// FromBig converts x to an integer.
// FromBig returns an overflow error if x has more than [bigint.MaxDigits] digits.
func FromBig(x *big.Int) (bigint.Int, error) {
	if x == nil {
		return bigint.Int{}, nil
	}
	return bigint.Parse(x.String())
}

// ToBig converts d to a [big.Int].
func ToBig(d bigint.Int) *big.Int {
	z, ok := new(big.Int).SetString(d.String(), 10)
	if !ok {
		panic("ToBig(" + d.String() + ") failed") // unexpected by design
	}
	return z
}

// fromScaled converts coef * 10^exp to an integer.
// The number of digits of coef bounds the work done for any exponent.
func fromScaled(coef *big.Int, exp int32) (bigint.Int, error) {
	if coef.Sign() == 0 {
		return bigint.Int{}, nil
	}
	digs := len(new(big.Int).Abs(coef).String())
	switch {
	case exp >= 0 && int64(digs)+int64(exp) > bigint.MaxDigits:
		return bigint.Int{}, errors.Wrapf(bigint.ErrOverflow, "%ve%v has %v digit(s), but a %T can have at most %v digit(s)", truncate(coef.String()), exp, int64(digs)+int64(exp), bigint.Int{}, bigint.MaxDigits)
	case exp >= 0:
		scale := new(big.Int).Exp(bigTen, big.NewInt(int64(exp)), nil)
		return FromBig(new(big.Int).Mul(coef, scale))
	case -int64(exp) > int64(digs):
		// 0 < |coef| < 10^-exp
		return bigint.Int{}, errors.Wrapf(ErrNotInteger, "%ve%v has a fractional part", truncate(coef.String()), exp)
	}
	scale := new(big.Int).Exp(bigTen, big.NewInt(-int64(exp)), nil)
	q, r := new(big.Int).QuoRem(coef, scale, new(big.Int))
	if r.Sign() != 0 {
		return bigint.Int{}, errors.Wrapf(ErrNotInteger, "%ve%v has a fractional part", truncate(coef.String()), exp)
	}
	return FromBig(q)
}

func truncate(s string) string {
	const n = 24
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// FromDecimal converts a shopspring decimal to an integer.
// FromDecimal returns an error if d has a non-zero fractional part or
// more than [bigint.MaxDigits] digits.
func FromDecimal(d decimal.Decimal) (bigint.Int, error) {
	return fromScaled(d.Coefficient(), d.Exponent())
}

// ToDecimal converts d to a shopspring decimal with exponent 0.
func ToDecimal(d bigint.Int) decimal.Decimal {
	return decimal.NewFromBigInt(ToBig(d), 0)
}

// FromApd converts an apd decimal to an integer.
// FromApd returns an error if d is not finite, has a non-zero fractional part,
// or has more than [bigint.MaxDigits] digits.
func FromApd(d *apd.Decimal) (bigint.Int, error) {
	if d == nil {
		return bigint.Int{}, nil
	}
	if d.Form != apd.Finite {
		return bigint.Int{}, errors.Wrapf(ErrNotFinite, "%v", d)
	}
	coef, ok := new(big.Int).SetString(d.Coeff.String(), 10)
	if !ok {
		return bigint.Int{}, errors.Newf("invalid coefficient %v", d) // unexpected by design
	}
	if d.Negative {
		coef.Neg(coef)
	}
	return fromScaled(coef, d.Exponent)
}

// ToApd converts d to an apd decimal with exponent 0.
func ToApd(d bigint.Int) *apd.Decimal {
	z, _, err := apd.NewFromString(d.String())
	if err != nil {
		panic("ToApd(" + d.String() + ") failed: " + err.Error()) // unexpected by design
	}
	return z
}
