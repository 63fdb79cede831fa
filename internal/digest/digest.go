package digest

import (
	"encoding/hex"
	"hash"

	"srpprim/internal/domain"
	"srpprim/internal/util/memzero"
)

type state uint8

const (
	initialized state = iota + 1
	finalized
	destroyed
)

func (s state) String() string {
	switch s {
	case initialized:
		return "initialized"
	case finalized:
		return "finalized"
	case destroyed:
		return "destroyed"
	default:
		return "uninitialized"
	}
}

// Digest is a single-use incremental hash computation.
// The zero value is not initialized; every call on it reports
// domain.ErrInvalidState.
type Digest struct {
	alg   Algorithm
	h     hash.Hash
	sum   []byte
	state state
}

// New returns a Digest for the default algorithm, ready for input.
func New() *Digest {
	d, err := NewAlgorithm(Default)
	if err != nil {
		panic("digest: default algorithm unavailable: " + err.Error())
	}
	return d
}

// NewAlgorithm returns a Digest for alg, ready for input.
func NewAlgorithm(alg Algorithm) (*Digest, error) {
	h, err := alg.engine()
	if err != nil {
		return nil, err
	}
	return &Digest{alg: alg, h: h, state: initialized}, nil
}

// Algorithm returns the hash function d computes.
func (d *Digest) Algorithm() Algorithm { return d.alg }

// Size returns the digest length in bytes, or 0 for an uninitialized Digest.
func (d *Digest) Size() int {
	if d.h == nil {
		return 0
	}
	return d.h.Size()
}

// BlockSize returns the underlying hash's block size.
func (d *Digest) BlockSize() int {
	if d.h == nil {
		return 0
	}
	return d.h.BlockSize()
}

// Finalized reports whether the digest value is available.
func (d *Digest) Finalized() bool { return d.state == finalized }

func (d *Digest) require(op string, want state) error {
	if d.state != want {
		return domain.Errorf(domain.KindInvalidState, "digest: "+op, "digest is %v, want %v", d.state, want)
	}
	return nil
}

// Update feeds p into the running computation.
func (d *Digest) Update(p []byte) error {
	if err := d.require("Update", initialized); err != nil {
		return err
	}
	d.h.Write(p)
	return nil
}

// Write implements [io.Writer] on top of [Digest.Update].
func (d *Digest) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize computes the digest of everything fed so far.
// It succeeds at most once.
func (d *Digest) Finalize() error {
	if err := d.require("Finalize", initialized); err != nil {
		return err
	}
	d.sum = d.h.Sum(nil)
	d.h.Reset()
	d.state = finalized
	return nil
}

// Sum returns a copy of the raw digest bytes.
func (d *Digest) Sum() ([]byte, error) {
	if err := d.require("Sum", finalized); err != nil {
		return nil, err
	}
	return append([]byte(nil), d.sum...), nil
}

// HexDigest returns the digest as lowercase hex, two characters per byte.
func (d *Digest) HexDigest() (string, error) {
	if err := d.require("HexDigest", finalized); err != nil {
		return "", err
	}
	return hex.EncodeToString(d.sum), nil
}

// String returns the hex digest once finalized and a placeholder otherwise.
func (d *Digest) String() string {
	s, err := d.HexDigest()
	if err != nil {
		return "digest(" + string(d.alg) + ", " + d.state.String() + ")"
	}
	return s
}

// Destroy wipes the finalized value and drops the hash state. Every later
// call reports domain.ErrInvalidState.
func (d *Digest) Destroy() {
	memzero.Zero(d.sum)
	d.sum = nil
	if d.h != nil {
		d.h.Reset()
	}
	d.h = nil
	d.state = destroyed
}

// Sum1 returns the digest of data under alg in one call.
func Sum1(alg Algorithm, data []byte) ([]byte, error) {
	d, err := NewAlgorithm(alg)
	if err != nil {
		return nil, err
	}
	defer d.Destroy()
	if err := d.Update(data); err != nil {
		return nil, err
	}
	if err := d.Finalize(); err != nil {
		return nil, err
	}
	return d.Sum()
}
