package bignum_test

import (
	"math/big"
	"testing"

	"srpprim/internal/bignum"
)

func bigHex(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad test hex %q", s)
	}
	return n
}

func TestInt_ZeroValue(t *testing.T) {
	var x bignum.Int
	if !x.IsZero() {
		t.Fatal("zero value is not zero")
	}
	if !bignum.New().IsZero() {
		t.Fatal("New() is not zero")
	}
	if bignum.New().SetUint64(1).IsZero() {
		t.Fatal("SetUint64(1) reports zero")
	}
}

func TestInt_SetUint64(t *testing.T) {
	tests := []struct {
		w    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{255, "FF"},
		{1 << 32, "100000000"},
		{^uint64(0), "FFFFFFFFFFFFFFFF"},
	}
	for _, tt := range tests {
		x := bignum.New().SetUint64(99).SetUint64(tt.w)
		if got := x.Hex(); got != tt.want {
			t.Errorf("SetUint64(%v) = %q, want %q", tt.w, got, tt.want)
		}
	}
}

func TestInt_Arithmetic(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"0", "0"},
		{"1", "0"},
		{"-5", "3"},
		{"FFFFFFFFFFFFFFFF", "1"},
		{"123456789ABCDEF0123456789ABCDEF", "-FEDCBA9876543210"},
		{"EEAF0AB9ADB38DD69C33F80AFA8FC5E8", "EEAF0AB9ADB38DD69C33F80AFA8FC5E8"},
	}
	for _, tt := range tests {
		a, b := bignum.MustParseHex(tt.a), bignum.MustParseHex(tt.b)
		ba, bb := bigHex(t, tt.a), bigHex(t, tt.b)

		if got, want := a.Add(b).Big(), new(big.Int).Add(ba, bb); got.Cmp(want) != 0 {
			t.Errorf("%v.Add(%v) = %v, want %X", a, b, got, want)
		}
		if got, want := a.Sub(b).Big(), new(big.Int).Sub(ba, bb); got.Cmp(want) != 0 {
			t.Errorf("%v.Sub(%v) = %v, want %X", a, b, got, want)
		}
		if got, want := a.Mul(b).Big(), new(big.Int).Mul(ba, bb); got.Cmp(want) != 0 {
			t.Errorf("%v.Mul(%v) = %v, want %X", a, b, got, want)
		}

		if a.Big().Cmp(ba) != 0 || b.Big().Cmp(bb) != 0 {
			t.Errorf("operands modified: %v, %v", a, b)
		}
	}
}

func TestInt_NoAliasing(t *testing.T) {
	a := bignum.NewUint64(7)
	sum := a.Add(bignum.New())
	sum.SetUint64(100)
	if a.Cmp(bignum.NewUint64(7)) != 0 {
		t.Fatalf("result shares storage with operand: a = %v", a)
	}
	c := a.Clone()
	c.SetUint64(1)
	if !a.Equal(bignum.NewUint64(7)) {
		t.Fatalf("clone shares storage: a = %v", a)
	}
	b := a.Big()
	b.SetInt64(0)
	if a.IsZero() {
		t.Fatal("Big() shares storage")
	}
}

func TestInt_Compare(t *testing.T) {
	a, b := bignum.NewUint64(3), bignum.MustParseHex("-3")
	if a.Cmp(b) != 1 || b.Cmp(a) != -1 || a.Cmp(a.Clone()) != 0 {
		t.Fatal("Cmp ordering wrong")
	}
	if b.Sign() != -1 || a.Sign() != 1 || bignum.New().Sign() != 0 {
		t.Fatal("Sign wrong")
	}
	if a.BitLen() != 2 || bignum.New().BitLen() != 0 {
		t.Fatal("BitLen wrong")
	}
}

func TestInt_Destroy(t *testing.T) {
	x := bignum.MustParseHex("DEADBEEFDEADBEEFDEADBEEFDEADBEEF")
	x.Destroy()
	if !x.IsZero() {
		t.Fatalf("Destroy left %v", x)
	}
	x.SetUint64(5)
	if !x.Equal(bignum.NewUint64(5)) {
		t.Fatal("destroyed Int is not reusable")
	}

	// A value that shrank still destroys cleanly and stays usable.
	y := bignum.MustParseHex("DEADBEEFDEADBEEFDEADBEEFDEADBEEFDEADBEEFDEADBEEF")
	y.SetUint64(7)
	y.Destroy()
	if !y.IsZero() || y.BitLen() != 0 {
		t.Fatalf("Destroy after shrink left %v", y)
	}
}

func TestMusts(t *testing.T) {
	for name, f := range map[string]func(){
		"hex":    func() { bignum.MustParseHex("xyz") },
		"mod":    func() { bignum.NewUint64(1).MustMod(bignum.New()) },
		"modexp": func() { bignum.NewUint64(1).MustModExp(bignum.New(), bignum.New()) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Must%s did not panic", name)
				}
			}()
			f()
		})
	}
}
