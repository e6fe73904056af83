package bigint

import "fmt"

// MustAdd is like [Int.Add] but panics if computing error.
func (d Int) MustAdd(e Int) Int {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Int.Sub] but panics if computing error.
func (d Int) MustSub(e Int) Int {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Int.Mul] but panics if computing error.
func (d Int) MustMul(e Int) Int {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Int.Quo] but panics if computing error.
func (d Int) MustQuo(e Int) Int {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustRem is like [Int.Rem] but panics if computing error.
func (d Int) MustRem(e Int) Int {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}
