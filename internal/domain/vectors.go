package domain

// DigestVector is a known-answer case for one digest algorithm.
// Input and Want are lowercase hex.
type DigestVector struct {
	Algorithm string `json:"algorithm"`
	InputHex  string `json:"input_hex"`
	WantHex   string `json:"want_hex"`
}

// ModExpVector is a known-answer case for base^exponent mod modulus.
// All fields are hex as accepted by the big integer parser.
type ModExpVector struct {
	Base     string `json:"base"`
	Exponent string `json:"exponent"`
	Modulus  string `json:"modulus"`
	Want     string `json:"want"`
}

// Vectors groups all known-answer cases.
type Vectors struct {
	Digests []DigestVector `json:"digests"`
	ModExp  []ModExpVector `json:"mod_exp"`
}

// Len returns the total number of cases.
func (v Vectors) Len() int { return len(v.Digests) + len(v.ModExp) }
