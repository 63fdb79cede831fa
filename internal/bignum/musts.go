package bignum

import "fmt"

// MustParseHex is like [Int.SetHex] on a new Int but panics on malformed input.
// It is intended for group constants.
func MustParseHex(s string) *Int {
	x := new(Int)
	if err := x.SetHex(s); err != nil {
		panic(fmt.Sprintf("MustParseHex(%q) failed: %v", s, err))
	}
	return x
}

// MustMod is like [Int.Mod] but panics if computing error.
func (x *Int) MustMod(m *Int) *Int {
	z, err := x.Mod(m)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", m, err))
	}
	return z
}

// MustModExp is like [Int.ModExp] but panics if computing error.
func (x *Int) MustModExp(e, m *Int) *Int {
	z, err := x.ModExp(e, m)
	if err != nil {
		panic(fmt.Sprintf("MustModExp(%v, %v) failed: %v", e, m, err))
	}
	return z
}
