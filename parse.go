// FILE: lixenwraith/input/parse.go
package input

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a raw input string into a value of type t.
//
// An empty string parses to "" for String and to nil for every other scalar kind.
// Sequence types split raw on commas and newlines and parse each trimmed segment
// with its slot type, returning []any; empty segments are nil slots. Tuples keep
// at most t.Len() segments. The first malformed segment fails the whole value.
func Parse(raw string, t Type) (any, error) {
	if t.isZero() {
		t = Of(String)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}

	if !t.IsSequence() {
		s := t.scalar()
		if raw == "" && s.kind == KindString {
			return "", nil
		}
		return parseScalar(raw, s)
	}

	return parseSequence(raw, t)
}

func parseSequence(raw string, t Type) ([]any, error) {
	segments := splitList(raw)
	if t.IsTuple() && len(segments) > t.Len() {
		segments = segments[:t.Len()]
	}

	out := make([]any, len(segments))
	for i, seg := range segments {
		elem := t.Elem(0)
		if t.IsTuple() {
			elem = t.Elem(i)
		}
		v, err := parseScalar(seg, elem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseScalar parses one value; empty input is always nil.
func parseScalar(raw string, s Scalar) (any, error) {
	if raw == "" {
		return nil, nil
	}

	switch s.kind {
	case KindString:
		return raw, nil
	case KindBool:
		return parseBool(raw)
	case KindNumber:
		return parseNumber(raw)
	case KindFunc:
		return s.fn(raw)
	default:
		return nil, ErrInvalidType
	}
}

func parseBool(raw string) (bool, error) {
	switch raw {
	case "true", "True", "TRUE":
		return true, nil
	case "false", "False", "FALSE":
		return false, nil
	}
	return false, ErrInvalidBoolean
}

// parseNumber accepts decimal and exponent forms plus 0x/0o/0b integer literals.
func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	// strconv accepts Go digit separators
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, ErrInvalidNumber
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		i, ierr := strconv.ParseInt(s, 0, 64)
		if ierr != nil {
			return 0, ErrInvalidNumber
		}
		f = float64(i)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalidNumber
	}
	return f, nil
}
