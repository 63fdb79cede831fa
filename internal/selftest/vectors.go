package selftest

import "srpprim/internal/domain"

// 1024-bit SRP group prime (RFC 5054, appendix A).
const group1024 = "EEAF0AB9ADB38DD69C33F80AFA8FC5E86072618775FF3C0B9EA2314C9C256576" +
	"D674DF7496EA81D3383B4813D692C6E0E0D5D8E250B98BE48E495C1D6089DAD1" +
	"5DC7D7B46154D6B6CE8EF4AD69B15D4982559B297BCF1885C529F566660E57EC" +
	"68EDBC3C05726CC02FD4CBF4976EAA9AFD5138FE8376435B9FC61D2FC0EB06E3"

// Builtin returns the known-answer vectors compiled into the binary.
func Builtin() domain.Vectors {
	return domain.Vectors{
		Digests: []domain.DigestVector{
			{Algorithm: "sha1", InputHex: "", WantHex: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
			{Algorithm: "sha1", InputHex: "616263", WantHex: "a9993e364706816aba3e25717850c26c9cd0d89d"},
			{Algorithm: "sha256", InputHex: "", WantHex: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
			{Algorithm: "sha256", InputHex: "616263", WantHex: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
			{Algorithm: "blake2b-256", InputHex: "", WantHex: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
			{Algorithm: "blake3", InputHex: "", WantHex: "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
		},
		ModExp: []domain.ModExpVector{
			{Base: "3", Exponent: "5", Modulus: "7", Want: "5"},
			{Base: "4", Exponent: "D", Modulus: "1F1", Want: "1BD"},
			{Base: "2", Exponent: "A", Modulus: "3E8", Want: "18"},
			{Base: "2", Exponent: "0", Modulus: group1024, Want: "1"},
			{Base: "2", Exponent: "1", Modulus: group1024, Want: "2"},
			{Base: "-1", Exponent: "2", Modulus: group1024, Want: "1"},
		},
	}
}
