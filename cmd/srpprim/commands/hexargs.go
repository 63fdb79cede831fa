package commands

import (
	"fmt"
	"slices"

	"srpprim/internal/bignum"
)

// hexOperandCmds take signed hex operands as positional arguments.
var hexOperandCmds = []string{"arith", "modexp"}

// parseHexArgs parses each argument as a hex integer, naming the offending
// position on failure.
func parseHexArgs(names []string, args []string) ([]*bignum.Int, error) {
	out := make([]*bignum.Int, len(args))
	for i, s := range args {
		x := bignum.New()
		if err := x.SetHex(s); err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		out[i] = x
	}
	return out, nil
}

// markNegativeOperands inserts "--" before the first negative hex operand of
// an arith or modexp invocation so the flag parser leaves it positional.
// Arguments already following "--" are untouched.
func markNegativeOperands(args []string) []string {
	inOperandCmd := false
	for i, a := range args {
		switch {
		case a == "--":
			return args
		case !inOperandCmd && slices.Contains(hexOperandCmds, a):
			inOperandCmd = true
		case inOperandCmd && isNegativeHex(a):
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// isNegativeHex reports whether a looks like "-" followed by hex digits.
// No arith or modexp flag has a hex-digit shorthand, so this is unambiguous
// there.
func isNegativeHex(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	for i := 1; i < len(a); i++ {
		c := a[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
