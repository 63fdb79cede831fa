package memzero_test

import (
	"bytes"
	"math/big"
	"testing"

	"srpprim/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	memzero.Zero(b)
	if !bytes.Equal(b, make([]byte, 5)) {
		t.Fatalf("want zeroed buffer, got %x", b)
	}
	memzero.Zero(nil)
}

func TestWords(t *testing.T) {
	n, _ := new(big.Int).SetString("123456789abcdef0123456789abcdef", 16)
	w := n.Bits()
	memzero.Words(w)
	for i, x := range w {
		if x != 0 {
			t.Fatalf("limb %d not wiped: %x", i, x)
		}
	}
}

func TestWords_SpareCapacity(t *testing.T) {
	w := []big.Word{1, 2, 3, 4}
	memzero.Words(w[:1])
	for i, x := range w {
		if x != 0 {
			t.Fatalf("limb %d beyond len not wiped: %x", i, x)
		}
	}
	memzero.Words(nil)
}
