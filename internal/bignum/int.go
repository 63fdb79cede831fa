package bignum

import (
	"math/big"

	"srpprim/internal/util/memzero"
)

// Int is an arbitrary-precision signed integer.
type Int struct {
	n big.Int
}

// New returns a new Int set to zero.
func New() *Int { return new(Int) }

// NewUint64 returns a new Int set to w.
func NewUint64(w uint64) *Int { return new(Int).SetUint64(w) }

// FromBig returns a new Int holding a copy of b.
func FromBig(b *big.Int) *Int {
	x := new(Int)
	x.n.Set(b)
	return x
}

// Big returns a copy of x as a *big.Int.
func (x *Int) Big() *big.Int { return new(big.Int).Set(&x.n) }

// Clone returns an independent copy of x.
func (x *Int) Clone() *Int { return FromBig(&x.n) }

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	z := new(Int)
	z.n.Add(&x.n, &y.n)
	return z
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	z := new(Int)
	z.n.Sub(&x.n, &y.n)
	return z
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	z := new(Int)
	z.n.Mul(&x.n, &y.n)
	return z
}

// SetUint64 sets x to w and returns x.
func (x *Int) SetUint64(w uint64) *Int {
	x.n.SetUint64(w)
	return x
}

// IsZero reports whether x == 0.
func (x *Int) IsZero() bool { return x.n.Sign() == 0 }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int { return x.n.Sign() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int { return x.n.Cmp(&y.n) }

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool { return x.n.Cmp(&y.n) == 0 }

// BitLen returns the length of the absolute value of x in bits.
// The bit length of 0 is 0.
func (x *Int) BitLen() int { return x.n.BitLen() }

// Destroy wipes the limbs of x and leaves it set to zero.
// Call it once a secret value (an ephemeral exponent, a shared key) is no
// longer needed.
func (x *Int) Destroy() {
	memzero.Words(x.n.Bits())
	x.n.SetInt64(0)
}
