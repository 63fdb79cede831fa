// Package digest provides a single-use incremental message digest.
//
// A [Digest] is created initialized, accepts input through [Digest.Update]
// (or [Digest.Write]) in any number of chunks, is finalized exactly once
// with [Digest.Finalize], and then yields its raw bytes through [Digest.Sum]
// and lowercase hex through [Digest.HexDigest]. The result never depends on
// how the input was chunked.
//
// Calls made in the wrong state return an error matching
// domain.ErrInvalidState and leave the digest untouched.
//
// # Algorithms
//
//   - sha1 (default): crypto/sha1
//   - sha256: github.com/minio/sha256-simd
//   - blake2b-256: golang.org/x/crypto/blake2b
//   - blake3: github.com/zeebo/blake3 (32-byte output)
package digest
