package bignum

import (
	"crypto/rand"
	"io"

	"srpprim/internal/domain"
	"srpprim/internal/util/memzero"
)

// Rand returns a uniformly random non-negative Int of exactly bits bits
// (the top bit is always set), drawn from crypto/rand.
func Rand(bits int) (*Int, error) { return RandFrom(rand.Reader, bits) }

// RandFrom is like [Rand] but reads entropy from r.
func RandFrom(r io.Reader, bits int) (*Int, error) {
	const op = "bignum: Rand"
	if bits < 1 {
		return nil, domain.Errorf(domain.KindRandom, op, "bit length %d is too small", bits)
	}
	buf := make([]byte, (bits+7)/8)
	defer memzero.Zero(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, domain.Wrap(domain.KindRandom, op, "cannot generate random number", err)
	}

	excess := uint(len(buf)*8 - bits)
	buf[0] &= 0xff >> excess
	buf[0] |= 0x80 >> excess

	x := new(Int)
	x.n.SetBytes(buf)
	return x, nil
}
