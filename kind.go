// FILE: lixenwraith/input/kind.go
package input

import (
	"fmt"
	"strings"
)

// Kind identifies a scalar input type
type Kind int

const (
	// KindInvalid is the zero Kind and never valid in a descriptor
	KindInvalid Kind = iota
	// KindString passes the raw value through unchanged
	KindString
	// KindBool accepts true|True|TRUE|false|False|FALSE
	KindBool
	// KindNumber accepts any finite number
	KindNumber
	// KindFunc delegates to a user parse function
	KindFunc
)

// String returns the name used in descriptors and error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindFunc:
		return "function"
	default:
		return "invalid"
	}
}

// ParseFunc converts a raw, non-empty input string into a custom value.
type ParseFunc func(raw string) (any, error)

// Scalar is a single-value type: one of the built-in kinds or a custom parse function.
type Scalar struct {
	kind Kind
	fn   ParseFunc
}

// Built-in scalar types.
var (
	String = Scalar{kind: KindString}
	Bool   = Scalar{kind: KindBool}
	Number = Scalar{kind: KindNumber}
)

// Func returns a scalar type parsed by fn. The function is only called for non-empty values.
func Func(fn ParseFunc) Scalar {
	return Scalar{kind: KindFunc, fn: fn}
}

// FuncOf adapts a typed parse function into a scalar type.
func FuncOf[T any](fn func(raw string) (T, error)) Scalar {
	if fn == nil {
		return Scalar{kind: KindFunc}
	}
	return Func(func(raw string) (any, error) {
		return fn(raw)
	})
}

// Kind returns the scalar's kind.
func (s Scalar) Kind() Kind {
	return s.kind
}

func (s Scalar) valid() bool {
	switch s.kind {
	case KindString, KindBool, KindNumber:
		return true
	case KindFunc:
		return s.fn != nil
	default:
		return false
	}
}

// Type describes what an input resolves to: a scalar, or a sequence of scalars.
// A sequence of length 1 is a variable-length array, a longer one is a fixed-width tuple.
// The zero Type is String.
type Type struct {
	elems []Scalar
	seq   bool
}

// Of returns a scalar type.
func Of(s Scalar) Type {
	return Type{elems: []Scalar{s}}
}

// Seq returns a sequence type with one slot per element.
func Seq(elems ...Scalar) Type {
	return Type{elems: append([]Scalar(nil), elems...), seq: true}
}

// ArrayOf returns a variable-length array type of elem.
func ArrayOf(elem Scalar) Type {
	return Seq(elem)
}

// TupleOf returns a fixed-width tuple type.
func TupleOf(elems ...Scalar) Type {
	return Seq(elems...)
}

// IsSequence reports whether t is an array or tuple type.
func (t Type) IsSequence() bool {
	return t.seq
}

// IsTuple reports whether t is a sequence with more than one slot.
func (t Type) IsTuple() bool {
	return t.seq && len(t.elems) > 1
}

// Len returns the number of declared slots (1 for scalars).
func (t Type) Len() int {
	return len(t.elems)
}

// Elem returns the scalar for slot i.
func (t Type) Elem(i int) Scalar {
	return t.elems[i]
}

// scalar returns the single scalar of a non-sequence type.
func (t Type) scalar() Scalar {
	if len(t.elems) == 0 {
		return String
	}
	return t.elems[0]
}

func (t Type) isZero() bool {
	return !t.seq && len(t.elems) == 0
}

// String renders the type as in descriptor documentation, e.g. "[string, number]".
func (t Type) String() string {
	if !t.seq {
		return t.scalar().kind.String()
	}
	names := make([]string, len(t.elems))
	for i, e := range t.elems {
		names[i] = e.kind.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// validate checks the descriptor is well-formed.
func (t Type) validate() error {
	if !t.seq {
		if !t.scalar().valid() {
			return fmt.Errorf("%w: type has to be either `string`, `boolean`, `number` or `function`", ErrInvalidType)
		}
		return nil
	}

	if len(t.elems) == 0 {
		return fmt.Errorf("%w: sequence type has to have at least one element", ErrInvalidType)
	}
	for i, e := range t.elems {
		if !e.valid() {
			return fmt.Errorf("%w: sequence element at index %d has to be either a `string`, `boolean`, `number` or `function`", ErrInvalidType, i)
		}
	}
	return nil
}
