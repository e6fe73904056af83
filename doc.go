/*
Package bigint implements immutable arbitrary-precision signed integers.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: a sequence of limbs in base 10^6, stored least significant
    limb first.
    For example, the integer 1234567890 is stored as the limbs [567890, 1234].

The base 10^6 was chosen so that the product of two limbs plus the
accumulated sums of a schoolbook multiplication fit into a uint64,
and so that conversion to and from decimal strings is a matter of
splitting the string into groups of 6 digits.

The magnitude is always normalized: it has no leading zero limbs,
and 0 is represented by a single zero limb.
Zero is never negative.

# Constraints

The magnitude of an integer can have at most [MaxDigits] (30,000) decimal
digits. Any operation whose result would exceed this ceiling returns
[ErrOverflow] instead of growing without bound.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [Int.String], [Int.Format], [Int.Scan].
  - from/to int64:
    [New], [NewFromUint64], [Int.Int64].
  - from/to text and JSON:
    [Int.MarshalText], [Int.UnmarshalText], [Int.MarshalJSON], [Int.UnmarshalJSON].

Conversions from and to [big.Int] and third-party decimal types live in
the bigconv subpackage.

# Operations

Addition, subtraction and multiplication are computed limb by limb with
carry or borrow propagation.
Multiplication is the schoolbook convolution of the two limb sequences.

Division is long division that searches for every quotient limb by
bisection: the range [0, B) is halved until it contains a single limb q such
that q * divisor <= remainder < (q + 1) * divisor.
Dividing by 2, or by any other divisor that fits into one limb,
is done in a single pass over the limbs.

The quotient is truncated toward zero and the remainder has the sign
of the dividend, which matches the / and % operators of Go:

	| Dividend | Divisor | Quo | Rem |
	| -------- | ------- | --- | --- |
	|  7       |  2      |  3  |  1  |
	| -7       |  2      | -3  | -1  |
	|  7       | -2      | -3  |  1  |
	| -7       | -2      |  3  | -1  |

# Errors

All methods are panic-free and pure, except for the methods with
the Must prefix and the *Assign methods, which update their receiver.
Errors are returned in the following cases:

  - Division by Zero.
    [Int.Quo], [Int.Rem], and [Int.QuoRem] return [ErrDivisionByZero]
    when dividing by 0.

  - Overflow.
    For results with more than [MaxDigits] digits, arithmetic operations
    and [Parse] return [ErrOverflow].

  - Invalid Syntax.
    [Parse] returns [ErrInvalidSyntax] if the string is not a decimal integer.

Returned errors wrap these sentinels and can be tested with [errors.Is].

[big.Int]: https://pkg.go.dev/math/big#Int
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bigint
