// Package memzero wipes sensitive buffers before they are released.
package memzero

import (
	"crypto/subtle"
	"math/big"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Words overwrites the limbs of a big integer with zeros, including the
// spare capacity past len(w) where a value that shrank keeps old limbs.
//
//go:noinline
func Words(w []big.Word) {
	w = w[:cap(w)]
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(&w)
}
