// FILE: lixenwraith/input/reconcile.go
package input

import (
	"reflect"
)

// resolution carries one input through reconciliation.
type resolution struct {
	opt    Option
	raw    string
	found  bool // a raw value existed, possibly empty
	parsed any
}

// reconcile merges the parsed value with the option's default, then enforces Required
// and applies the Modifier.
func reconcile(r resolution) (any, error) {
	var value any
	if r.opt.Type.IsSequence() {
		value = reconcileSequence(r)
	} else {
		value = r.parsed
		if value == nil {
			value = r.opt.Default
		}
	}

	if r.opt.Required {
		if err := checkRequired(r, value); err != nil {
			return nil, err
		}
	}

	if r.opt.Modifier != nil {
		return r.opt.Modifier(value)
	}
	return value, nil
}

// reconcileSequence fills unset slots from the default.
func reconcileSequence(r resolution) any {
	defaults, seqDefault := sequenceOf(r.opt.Default)

	if !r.found {
		if !seqDefault {
			return nil
		}
		return mergeSlots(nil, r.opt.Type, defaults, nil)
	}

	parsed, _ := r.parsed.([]any)
	if seqDefault {
		return mergeSlots(parsed, r.opt.Type, defaults, nil)
	}
	return mergeSlots(parsed, r.opt.Type, nil, r.opt.Default)
}

// mergeSlots builds the output slice. With per-slot defaults the result is as
// long as the longer of the declared (tuple) or parsed (array) length and the
// defaults; otherwise it has the declared or parsed length and every unset slot
// takes fallback.
func mergeSlots(parsed []any, t Type, defaults []any, fallback any) []any {
	n := len(parsed)
	if t.IsTuple() {
		n = t.Len()
	}
	if len(defaults) > n {
		n = len(defaults)
	}

	out := make([]any, n)
	for i := range out {
		switch {
		case i < len(parsed) && parsed[i] != nil:
			out[i] = parsed[i]
		case defaults != nil:
			if i < len(defaults) {
				out[i] = defaults[i]
			}
		default:
			out[i] = fallback
		}
	}
	return out
}

func checkRequired(r resolution, value any) error {
	if value == nil {
		return &RequiredError{Keys: r.opt.Keys, Empty: r.found && r.raw == ""}
	}

	if !r.opt.Type.IsSequence() {
		return nil
	}
	slots, ok := value.([]any)
	if !ok {
		return nil
	}
	var missing []int
	for i, v := range slots {
		if v == nil {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return &IncompleteError{Keys: r.opt.Keys, Missing: missing}
	}
	return nil
}

// sequenceOf reports whether v is a slice or array default and copies it into []any.
// Byte slices are treated as scalars.
func sequenceOf(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return append(make([]any, 0, len(s)), s...), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}
