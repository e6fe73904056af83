package bigint

import "strconv"

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*B^(n-1) + x[n-2]*B^(n-2) + ... + x[1]*B + x[0]
//
// with B = 10^6 and 0 <= x[i] < B, stored least significant limb first.
//
// A nat is normalized if it has no leading zero limbs.
// The normalized representation of 0 is a single zero limb.
// A nil or empty nat is treated as 0 by every method.
type nat []uint64

const (
	limbBase   = 1_000_000 // base of a single limb
	limbDigits = 6         // decimal digits per limb, log10(limbBase)
)

// pow10 is a cache of powers of 10 that fit into a limb, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,         // 10^0
	10,        // 10^1
	100,       // 10^2
	1_000,     // 10^3
	10_000,    // 10^4
	100_000,   // 10^5
	1_000_000, // 10^6
}

// natFromUint64 splits u into limbs.
func natFromUint64(u uint64) nat {
	if u == 0 {
		return nat{0}
	}
	z := make(nat, 0, 4)
	for u != 0 {
		z = append(z, u%limbBase)
		u /= limbBase
	}
	return z
}

// natFromPowBase returns B^k.
func natFromPowBase(k int) nat {
	z := make(nat, k+1)
	z[k] = 1
	return z
}

// norm removes leading zero limbs, keeping a single zero limb for 0.
func (x nat) norm() nat {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nat{0}
	}
	return x[:i]
}

// clone returns a copy of x that does not share memory with x.
func (x nat) clone() nat {
	if len(x) == 0 {
		return nat{0}
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// isTwo is used to select the halving fast path.
func (x nat) isTwo() bool {
	return len(x) == 1 && x[0] == 2
}

// isSmall returns true if x fits into a single limb.
func (x nat) isSmall() bool {
	return len(x) <= 1
}

// limbs returns the number of limbs in normalized x.
func (x nat) limbs() int {
	if len(x) == 0 {
		return 1
	}
	return len(x)
}

// prec returns the number of decimal digits in x.
// The prec of 0 is 0.
func (x nat) prec() int {
	if x.isZero() {
		return 0
	}
	top := x[len(x)-1]
	n := 0
	for n < limbDigits && top >= pow10[n] {
		n++
	}
	return (len(x)-1)*limbDigits + n
}

// uint64 returns x as uint64 and reports whether it fits.
func (x nat) uint64() (uint64, bool) {
	const maxUint64 = ^uint64(0)
	var z uint64
	for i := len(x) - 1; i >= 0; i-- {
		if z > (maxUint64-x[i])/limbBase {
			return 0, false
		}
		z = z*limbBase + x[i]
	}
	return z, true
}

// cmp compares magnitudes of normalized x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x nat) cmp(y nat) int {
	x, y = x.norm(), y.norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y.
func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var carry uint64
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		z[i] = s % limbBase
		carry = s / limbBase
	}
	z[len(x)] = carry
	return z.norm()
}

// sub calculates x - y.
// The caller must ensure that x >= y.
func (x nat) sub(y nat) nat {
	z := make(nat, len(x))
	var borrow uint64
	for i := range x {
		s := borrow
		if i < len(y) {
			s += y[i]
		}
		if x[i] >= s {
			z[i] = x[i] - s
			borrow = 0
		} else {
			z[i] = x[i] + limbBase - s
			borrow = 1
		}
	}
	if borrow != 0 {
		panic("bigint: nat.sub underflow") // unexpected by design
	}
	return z.norm()
}

// mul calculates x * y using schoolbook convolution.
// Every partial product is below B^2 = 10^12, so a position can absorb
// more than 10^7 of them before uint64 overflows, well above any limb
// count produced inside the ceiling.
func (x nat) mul(y nat) nat {
	if x.isZero() || y.isZero() {
		return nat{0}
	}
	z := make(nat, len(x)+len(y))
	for j := range y {
		if y[j] == 0 {
			continue
		}
		for i := range x {
			z[i+j] += x[i] * y[j]
		}
	}
	for k := 0; k < len(z)-1; k++ {
		z[k+1] += z[k] / limbBase
		z[k] %= limbBase
	}
	return z.norm()
}

// half calculates ⌊x / 2⌋ in a single pass from the most significant limb.
func (x nat) half() nat {
	if len(x) == 0 {
		return nat{0}
	}
	z := make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := x[i] + rem*limbBase
		z[i] = cur / 2
		rem = cur % 2
	}
	return z.norm()
}

// quoSmall calculates q = ⌊x / y⌋ and r = x - q*y for a single-limb y > 0.
func (x nat) quoSmall(y uint64) (q nat, r uint64) {
	if len(x) == 0 {
		return nat{0}, 0
	}
	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		cur := x[i] + r*limbBase
		q[i] = cur / y
		r = cur % y
	}
	return q.norm(), r
}

// mulSmall calculates x * y for a single-limb y.
func (x nat) mulSmall(y uint64) nat {
	z := make(nat, len(x)+1)
	var carry uint64
	for i, xi := range x {
		t := xi*y + carry
		z[i] = t % limbBase
		carry = t / limbBase
	}
	z[len(x)] = carry
	return z.norm()
}

// quoSearch calculates ⌊x / y⌋ one quotient limb at a time, most significant
// first. Each limb d is found by bisecting [0, B) so that d*y <= r < (d+1)*y,
// where r is the running partial remainder.
// Since r < y before every step, r*B + x[i] < y*B and d always fits a limb.
// The caller must ensure that y != 0.
func (x nat) quoSearch(y nat) nat {
	x, y = x.norm(), y.norm()
	if x.cmp(y) < 0 {
		return nat{0}
	}
	q := make(nat, len(x)-len(y)+1)
	r := nat{0}
	for i := len(x) - 1; i >= 0; i-- {
		// r = r*B + x[i]
		r = append(nat{x[i]}, r...).norm()
		lo, hi := uint64(0), uint64(limbBase)
		for hi-lo > 1 {
			mid := (lo + hi) / 2
			if y.mulSmall(mid).cmp(r) > 0 {
				hi = mid
			} else {
				lo = mid
			}
		}
		if lo != 0 {
			r = r.sub(y.mulSmall(lo))
		}
		if i < len(q) {
			q[i] = lo
		}
	}
	return q.norm()
}

// quo calculates ⌊x / y⌋.
// The caller must ensure that y != 0.
func (x nat) quo(y nat) nat {
	y = y.norm()
	switch {
	case y.isTwo():
		return x.half()
	case y.isSmall():
		q, _ := x.quoSmall(y[0])
		return q
	}
	return x.quoSearch(y)
}

// quoRem calculates q = ⌊x / y⌋ and r = x - q*y.
// The caller must ensure that y != 0.
func (x nat) quoRem(y nat) (q, r nat) {
	q = x.quo(y)
	r = x.norm().sub(q.mul(y))
	return q, r
}

// appendDecimal appends the decimal representation of x to buf.
// The most significant limb is written without padding, all others are
// zero-padded to exactly limbDigits characters.
func (x nat) appendDecimal(buf []byte) []byte {
	x = x.norm()
	buf = strconv.AppendUint(buf, x[len(x)-1], 10)
	for i := len(x) - 2; i >= 0; i-- {
		d := x[i]
		for p := limbDigits - 1; p >= 0; p-- {
			buf = append(buf, byte(d/pow10[p]%10)+'0')
		}
	}
	return buf
}

// string returns the decimal representation of x.
func (x nat) string() string {
	return string(x.appendDecimal(make([]byte, 0, x.limbs()*limbDigits)))
}

// parseDigits converts a string consisting only of ASCII digits into a nat,
// grouping digits into limbs from right to left.
// The leftmost group may be shorter than limbDigits.
// The caller must validate the characters.
func parseDigits(s string) nat {
	if len(s) == 0 {
		return nat{0}
	}
	z := make(nat, 0, (len(s)+limbDigits-1)/limbDigits)
	for end := len(s); end > 0; end -= limbDigits {
		start := end - limbDigits
		if start < 0 {
			start = 0
		}
		var limb uint64
		for _, c := range []byte(s[start:end]) {
			limb = limb*10 + uint64(c-'0')
		}
		z = append(z, limb)
	}
	return z.norm()
}
