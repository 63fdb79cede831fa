package bignum

import (
	"math/big"
	"strings"

	"srpprim/internal/domain"
)

// SetBytes sets x to the unsigned big-endian integer encoded by b and
// returns x. An empty b encodes zero.
func (x *Int) SetBytes(b []byte) *Int {
	x.n.SetBytes(b)
	return x
}

// Bytes returns the absolute value of x as a minimal unsigned big-endian
// byte slice. Zero is encoded as a single 0x00 byte.
func (x *Int) Bytes() []byte {
	if x.n.Sign() == 0 {
		return []byte{0}
	}
	return x.n.Bytes()
}

// ByteLen returns len(x.Bytes()) without allocating.
func (x *Int) ByteLen() int {
	if x.n.Sign() == 0 {
		return 1
	}
	return (x.n.BitLen() + 7) / 8
}

// SetHex sets x to the value of the hexadecimal string s.
// Digits are case-insensitive and may be preceded by a single '-'.
// On failure x is left unchanged.
func (x *Int) SetHex(s string) error {
	const op = "bignum: SetHex"
	digits := s
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	if digits == "" {
		return domain.Errorf(domain.KindConversion, op, "no digits in %q", s)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return domain.Errorf(domain.KindConversion, op, "invalid character %q in %q", digits[i], s)
		}
	}
	var n big.Int
	if _, ok := n.SetString(digits, 16); !ok {
		return domain.Errorf(domain.KindConversion, op, "cannot convert %q", s)
	}
	if neg {
		n.Neg(&n)
	}
	x.n.Set(&n)
	return nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Hex returns x in uppercase hexadecimal with a leading '-' when negative.
// Zero is "0".
func (x *Int) Hex() string { return strings.ToUpper(x.n.Text(16)) }

// String implements the [fmt.Stringer] interface. It is the same as [Int.Hex].
func (x *Int) String() string { return x.Hex() }

// MarshalText implements the [encoding.TextMarshaler] interface using [Int.Hex].
func (x *Int) MarshalText() ([]byte, error) { return []byte(x.Hex()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface using [Int.SetHex].
func (x *Int) UnmarshalText(text []byte) error { return x.SetHex(string(text)) }
