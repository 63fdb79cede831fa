package bignum

import "testing"

func TestDestroy_WipesSpareLimbs(t *testing.T) {
	x := MustParseHex("DEADBEEFDEADBEEFDEADBEEFDEADBEEFDEADBEEFDEADBEEF")
	x.SetUint64(5)
	w := x.n.Bits()
	if cap(w) < 2 {
		t.Fatalf("shrunk value kept cap %d, want spare limbs", cap(w))
	}
	spare := w[1:cap(w)]
	stale := false
	for _, v := range spare {
		if v != 0 {
			stale = true
		}
	}
	if !stale {
		t.Fatal("no stale limbs left by SetUint64")
	}

	x.Destroy()
	w = x.n.Bits()
	for i, v := range w[:cap(w)] {
		if v != 0 {
			t.Fatalf("limb %d survived Destroy: %x", i, v)
		}
	}
}
