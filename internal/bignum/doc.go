// Package bignum implements the arbitrary-precision integer used for
// Diffie-Hellman style group arithmetic.
//
// # Representation
//
// [Int] wraps a [big.Int]. The zero value of Int is zero and ready to use.
// An Int must not be copied by value; use [Int.Clone].
//
// # Operations
//
// Arithmetic methods ([Int.Add], [Int.Sub], [Int.Mul], [Int.Mod],
// [Int.ModExp]) never modify their operands and always return a freshly
// allocated result. The Set methods ([Int.SetUint64], [Int.SetBytes],
// [Int.SetHex]) overwrite the receiver.
//
// [Int.ModExp] uses constant-time Montgomery exponentiation for odd moduli,
// which covers every safe-prime group. Even moduli fall back to [big.Int.Exp].
//
// # Conversions
//
//   - from/to bytes: [Int.SetBytes], [Int.Bytes], [Int.ByteLen]
//     (unsigned big-endian).
//   - from/to hex: [Int.SetHex], [Int.Hex], [MustParseHex].
//   - from/to math/big: [FromBig], [Int.Big].
//
// # Errors
//
// Failures are *domain.Error values of kind KindConversion, KindArithmetic
// or KindRandom. Use errors.Is with domain.ErrConversion and friends.
package bignum
