package selftest_test

import (
	"strings"
	"testing"

	"srpprim/internal/domain"
	"srpprim/internal/selftest"
)

func TestRun_Builtin(t *testing.T) {
	r := selftest.Run(selftest.Builtin(), 10)
	for _, res := range r.Failed() {
		t.Errorf("%s failed: %s", res.Name, res.Detail)
	}
	if !r.OK() {
		t.FailNow()
	}
	if len(r.Results) != selftest.Builtin().Len()+7 {
		t.Fatalf("got %d results", len(r.Results))
	}
}

func TestRun_BadVectors(t *testing.T) {
	v := domain.Vectors{
		Digests: []domain.DigestVector{
			{Algorithm: "sha1", InputHex: "", WantHex: "00"},
			{Algorithm: "md5", InputHex: "", WantHex: "00"},
			{Algorithm: "sha1", InputHex: "zz", WantHex: "00"},
		},
		ModExp: []domain.ModExpVector{
			{Base: "2", Exponent: "2", Modulus: "5", Want: "3"},
			{Base: "2", Exponent: "2", Modulus: "0", Want: "0"},
			{Base: "q", Exponent: "2", Modulus: "5", Want: "4"},
		},
	}
	r := selftest.Run(v, 1)
	failed := r.Failed()
	if len(failed) != 6 {
		t.Fatalf("want 6 failures, got %d: %+v", len(failed), failed)
	}
	for _, res := range failed {
		if !strings.HasPrefix(res.Name, "digest/") && !strings.HasPrefix(res.Name, "modexp/") {
			t.Errorf("unexpected failure %s: %s", res.Name, res.Detail)
		}
		if res.Detail == "" {
			t.Errorf("%s: empty detail", res.Name)
		}
	}
}
