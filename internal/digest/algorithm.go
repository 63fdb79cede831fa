package digest

import (
	"crypto/sha1"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Algorithm names a registered hash function.
type Algorithm string

const (
	SHA1       Algorithm = "sha1"
	SHA256     Algorithm = "sha256"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE3     Algorithm = "blake3"
)

// Default is the algorithm used by [New].
const Default = SHA1

var engines = map[Algorithm]func() (hash.Hash, error){
	SHA1:   func() (hash.Hash, error) { return sha1.New(), nil },
	SHA256: func() (hash.Hash, error) { return sha256.New(), nil },
	BLAKE2b256: func() (hash.Hash, error) {
		return blake2b.New256(nil)
	},
	BLAKE3: func() (hash.Hash, error) { return blake3.New(), nil },
}

// ParseAlgorithm returns the Algorithm named by s (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := engines[a]; !ok {
		return "", fmt.Errorf("unknown digest algorithm %q (want one of %s)", s, strings.Join(Names(), ", "))
	}
	return a, nil
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for a := range engines {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}

func (a Algorithm) String() string { return string(a) }

func (a Algorithm) engine() (hash.Hash, error) {
	f, ok := engines[a]
	if !ok {
		return nil, fmt.Errorf("unknown digest algorithm %q", string(a))
	}
	return f()
}
