// Package selftest checks the primitives against known answers and the
// algebraic properties the SRP layer relies on.
package selftest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"srpprim/internal/bignum"
	"srpprim/internal/digest"
	"srpprim/internal/domain"
)

// Result is the outcome of one named check.
type Result struct {
	Name   string
	OK     bool
	Detail string
}

// Report collects results in execution order.
type Report struct {
	Results []Result
}

// Failed returns the failing results.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Failed()) == 0 }

func (r *Report) add(name string, err error) {
	res := Result{Name: name, OK: err == nil}
	if err != nil {
		res.Detail = err.Error()
	}
	r.Results = append(r.Results, res)
}

// Run evaluates every vector in v followed by the built-in property checks.
// rounds controls how many random trials each property gets.
func Run(v domain.Vectors, rounds int) Report {
	var r Report
	for i, dv := range v.Digests {
		r.add(fmt.Sprintf("digest/%s/%d", dv.Algorithm, i), checkDigest(dv))
	}
	for i, mv := range v.ModExp {
		r.add(fmt.Sprintf("modexp/%d", i), checkModExp(mv))
	}
	for _, p := range properties {
		r.add("property/"+p.name, p.check(rounds))
	}
	return r
}

func checkDigest(v domain.DigestVector) error {
	alg, err := digest.ParseAlgorithm(v.Algorithm)
	if err != nil {
		return err
	}
	in, err := hex.DecodeString(v.InputHex)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	sum, err := digest.Sum1(alg, in)
	if err != nil {
		return err
	}
	if got := hex.EncodeToString(sum); got != strings.ToLower(v.WantHex) {
		return fmt.Errorf("got %s, want %s", got, v.WantHex)
	}
	return nil
}

func checkModExp(v domain.ModExpVector) error {
	var b, e, m, want bignum.Int
	for _, f := range []struct {
		x *bignum.Int
		s string
	}{{&b, v.Base}, {&e, v.Exponent}, {&m, v.Modulus}, {&want, v.Want}} {
		if err := f.x.SetHex(f.s); err != nil {
			return err
		}
	}
	got, err := b.ModExp(&e, &m)
	if err != nil {
		return err
	}
	if !got.Equal(&want) {
		return fmt.Errorf("got %v, want %v", got, &want)
	}
	return nil
}

type property struct {
	name  string
	check func(rounds int) error
}

var properties = []property{
	{"bytes-round-trip", bytesRoundTrip},
	{"hex-round-trip", hexRoundTrip},
	{"modexp-identities", modExpIdentities},
	{"is-zero", isZero},
	{"rand-bit-length", randBitLength},
	{"digest-chunking", digestChunking},
	{"digest-before-finalize", digestBeforeFinalize},
}

func bytesRoundTrip(rounds int) error {
	for i := 0; i < rounds; i++ {
		a, err := bignum.Rand(8 + i%512)
		if err != nil {
			return err
		}
		b, err := bignum.Rand(1 + i%300)
		if err != nil {
			return err
		}
		sum := a.Add(b)
		back := bignum.New().SetBytes(sum.Bytes())
		if !back.Equal(sum) {
			return fmt.Errorf("%v + %v decoded as %v", a, b, back)
		}
		if sum.ByteLen() != len(sum.Bytes()) {
			return fmt.Errorf("ByteLen %d != len(Bytes) %d", sum.ByteLen(), len(sum.Bytes()))
		}
	}
	return nil
}

func hexRoundTrip(rounds int) error {
	for i := 0; i < rounds; i++ {
		a, err := bignum.Rand(1 + i%2048)
		if err != nil {
			return err
		}
		if i%2 == 1 {
			a = bignum.New().Sub(a)
		}
		back := bignum.New()
		if err := back.SetHex(a.Hex()); err != nil {
			return err
		}
		if !back.Equal(a) {
			return fmt.Errorf("%v parsed back as %v", a, back)
		}
	}
	return nil
}

func modExpIdentities(rounds int) error {
	n := bignum.MustParseHex(group1024)
	zero, one := bignum.New(), bignum.NewUint64(1)
	for i := 0; i < rounds; i++ {
		a, err := bignum.Rand(1 + i%1500)
		if err != nil {
			return err
		}
		got, err := a.ModExp(zero, n)
		if err != nil {
			return err
		}
		if !got.Equal(one) {
			return fmt.Errorf("%v^0 mod N = %v", a, got)
		}
		got, err = a.ModExp(one, n)
		if err != nil {
			return err
		}
		if want := a.MustMod(n); !got.Equal(want) {
			return fmt.Errorf("%v^1 mod N = %v, want %v", a, got, want)
		}
	}
	return nil
}

func isZero(int) error {
	if !bignum.New().IsZero() {
		return errors.New("new Int is not zero")
	}
	if bignum.New().SetUint64(1).IsZero() {
		return errors.New("Int set to 1 is zero")
	}
	return nil
}

func randBitLength(rounds int) error {
	for _, bits := range []int{1, 64, 256, 1024} {
		for i := 0; i < rounds; i++ {
			x, err := bignum.Rand(bits)
			if err != nil {
				return err
			}
			if x.BitLen() != bits {
				return fmt.Errorf("Rand(%d) has %d bits", bits, x.BitLen())
			}
		}
	}
	return nil
}

func digestChunking(int) error {
	msg := []byte(strings.Repeat("srp", 257))
	for _, name := range digest.Names() {
		alg := digest.Algorithm(name)
		want, err := digest.Sum1(alg, msg)
		if err != nil {
			return err
		}
		d, err := digest.NewAlgorithm(alg)
		if err != nil {
			return err
		}
		for i := 0; i < len(msg); i += 7 {
			if err := d.Update(msg[i:min(i+7, len(msg))]); err != nil {
				return err
			}
		}
		if err := d.Finalize(); err != nil {
			return err
		}
		got, err := d.Sum()
		if err != nil {
			return err
		}
		if hex.EncodeToString(got) != hex.EncodeToString(want) {
			return fmt.Errorf("%s: chunked %x, whole %x", alg, got, want)
		}
	}
	return nil
}

func digestBeforeFinalize(int) error {
	d := digest.New()
	if sum, err := d.Sum(); !errors.Is(err, domain.ErrInvalidState) || sum != nil {
		return fmt.Errorf("Sum before Finalize = %x, %v", sum, err)
	}
	return nil
}
