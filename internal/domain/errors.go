package domain

import (
	"errors"
	"fmt"
)

// Kind classifies failures reported by the primitives.
type Kind uint8

const (
	// KindConversion marks a malformed or unrepresentable encoding.
	KindConversion Kind = iota + 1
	// KindArithmetic marks invalid operands to a modular operation.
	KindArithmetic
	// KindRandom marks an entropy source failure.
	KindRandom
	// KindInvalidState marks an operation invoked outside its required state.
	KindInvalidState
)

func (k Kind) String() string {
	switch k {
	case KindConversion:
		return "conversion error"
	case KindArithmetic:
		return "arithmetic error"
	case KindRandom:
		return "random generation error"
	case KindInvalidState:
		return "invalid state"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sentinels for errors.Is; any *Error of the same Kind matches.
var (
	ErrConversion   = &Error{Kind: KindConversion}
	ErrArithmetic   = &Error{Kind: KindArithmetic}
	ErrRandom       = &Error{Kind: KindRandom}
	ErrInvalidState = &Error{Kind: KindInvalidState}
)

// Error is a structured failure carrying a kind, the failing operation
// and a human-readable message.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

// Errorf builds an *Error of kind k for op with a formatted message.
func Errorf(k Kind, op, format string, args ...any) *Error {
	return &Error{Kind: k, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of kind k for op around cause.
func Wrap(k Kind, op, msg string, cause error) *Error {
	return &Error{Kind: k, Op: op, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
