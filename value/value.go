/*
File    : golox/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime Value domain the evaluator computes
// over: nil, booleans, 64-bit floats, and strings. It is the computed
// twin of ast.Literal's constant domain, kept as its own explicit
// variant family (rather than leaking host `interface{}` typing through
// the evaluator) so that truthiness and equality are each implemented
// exactly once.
package value

import (
	"github.com/akashmaji946/golox/token"
)

// Value is the sealed interface implemented by the four runtime kinds.
type Value interface {
	// Truthy reports this value's boolean projection: only Nil and a
	// false Bool are falsy; every other value is truthy.
	Truthy() bool
	// String renders the user-facing form printed by `evaluate`.
	String() string
}

// Nil is the singleton null value.
type Nil struct{}

// Truthy is always false for Nil.
func (Nil) Truthy() bool { return false }

// String renders "nil".
func (Nil) String() string { return "nil" }

// Bool wraps a boolean value.
type Bool bool

// Truthy returns the boolean itself.
func (b Bool) Truthy() bool { return bool(b) }

// String renders "true" or "false".
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number wraps a 64-bit float. Every numeric value in Lox, integral or
// not, is a Number.
type Number float64

// Truthy is always true for Number, including zero.
func (Number) Truthy() bool { return true }

// String renders whole numbers without a fractional part and other
// reals with their fractional digits, per token.FormatNumber.
func (n Number) String() string { return token.FormatNumber(float64(n)) }

// Str wraps a string value.
type Str string

// Truthy is always true for Str, including the empty string.
func (Str) Truthy() bool { return true }

// String renders the raw contents with no surrounding quotes.
func (s Str) String() string { return string(s) }

// Equal reports whether a and b are equal under Lox's equality rule:
// same variant and equal content. Nil == Nil is true; a Number and a
// Str are never equal; Number equality is IEEE-754 (so NaN != NaN).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	default:
		return false
	}
}

// FromLiteral converts an ast.Literal's constant payload (nil, bool,
// float64, or string) into the corresponding Value.
func FromLiteral(v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(x)
	case float64:
		return Number(x)
	case string:
		return Str(x)
	default:
		return Nil{}
	}
}
