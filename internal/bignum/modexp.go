package bignum

import (
	"math/big"

	"filippo.io/bigmod"

	"srpprim/internal/domain"
	"srpprim/internal/util/memzero"
)

var one = big.NewInt(1)

// Mod returns x mod m as the Euclidean remainder, so 0 <= result < m.
// It fails with domain.ErrArithmetic unless m > 0.
func (x *Int) Mod(m *Int) (*Int, error) {
	if m.n.Sign() <= 0 {
		return nil, domain.Errorf(domain.KindArithmetic, "bignum: Mod", "modulus must be positive, got %v", m)
	}
	z := new(Int)
	z.n.Mod(&x.n, &m.n)
	return z, nil
}

// ModExp returns x^e mod m. It fails with domain.ErrArithmetic unless
// m > 0 and e >= 0.
//
// For odd m the exponentiation runs in constant time with respect to the
// bits of e and of the reduced base.
func (x *Int) ModExp(e, m *Int) (*Int, error) {
	const op = "bignum: ModExp"
	if m.n.Sign() <= 0 {
		return nil, domain.Errorf(domain.KindArithmetic, op, "modulus must be positive, got %v", m)
	}
	if e.n.Sign() < 0 {
		return nil, domain.Errorf(domain.KindArithmetic, op, "negative exponent")
	}
	z := new(Int)
	if m.n.Cmp(one) == 0 {
		return z, nil
	}

	var base big.Int
	base.Mod(&x.n, &m.n)
	defer func() { memzero.Words(base.Bits()) }()

	if m.n.Bit(0) == 0 {
		z.n.Exp(&base, &e.n, &m.n)
		return z, nil
	}
	if err := expOdd(&z.n, &base, &e.n, &m.n); err != nil {
		return nil, domain.Wrap(domain.KindArithmetic, op, "montgomery exponentiation failed", err)
	}
	return z, nil
}

// expOdd sets z = base^e mod m for odd m > 1 and 0 <= base < m.
func expOdd(z, base, e, m *big.Int) error {
	mod, err := bigmod.NewModulus(m.Bytes())
	if err != nil {
		return err
	}
	bb := base.Bytes()
	defer memzero.Zero(bb)
	b, err := bigmod.NewNat().SetBytes(bb, mod)
	if err != nil {
		return err
	}
	eb := e.Bytes()
	defer memzero.Zero(eb)

	out := bigmod.NewNat().Exp(b, eb, mod).Bytes(mod)
	defer memzero.Zero(out)
	z.SetBytes(out)
	return nil
}
