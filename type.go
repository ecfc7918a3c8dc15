// File: lixenwraith/input/type.go
package input

import (
	"fmt"
	"reflect"
	"strconv"
)

// Values holds resolved inputs by entry name.
type Values map[string]any

// Get returns the raw resolved value and whether the name was resolved.
func (v Values) Get(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// String retrieves a string value.
// Attempts conversion from common types if the resolved value isn't already a string.
func (v Values) String(name string) (string, error) {
	val, found := v[name]
	if !found {
		return "", fmt.Errorf("input not resolved: %s", name)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	switch s := val.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case []byte:
		return string(s), nil
	case bool:
		return strconv.FormatBool(s), nil
	case error:
		return s.Error(), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}

	return "", fmt.Errorf("cannot convert type %T to string for input %s", val, name)
}

// Bool retrieves a boolean value.
// Numbers convert as 0=false, non-zero=true; strings must be an accepted boolean literal.
func (v Values) Bool(name string) (bool, error) {
	val, found := v[name]
	if !found {
		return false, fmt.Errorf("input not resolved: %s", name)
	}
	if val == nil {
		return false, fmt.Errorf("value for input %s is nil, cannot convert to bool", name)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		b, err := parseBool(rv.String())
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for input %s: %w", rv.String(), name, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for input %s", val, name)
}

// Float64 retrieves a numeric value.
func (v Values) Float64(name string) (float64, error) {
	val, found := v[name]
	if !found {
		return 0, fmt.Errorf("input not resolved: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for input %s is nil, cannot convert to float64", name)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		f, err := parseNumber(rv.String())
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64 for input %s: %w", rv.String(), name, err)
		}
		return f, nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to float64 for input %s", val, name)
}

// Int64 retrieves a numeric value truncated to an integer.
func (v Values) Int64(name string) (int64, error) {
	val, found := v[name]
	if !found {
		return 0, fmt.Errorf("input not resolved: %s", name)
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d (type %T) to int64 for input %s: overflow", u, val, name)
		}
		return int64(u), nil
	}

	f, err := v.Float64(name)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// Slice retrieves a sequence value. Unset slots are nil.
func (v Values) Slice(name string) ([]any, error) {
	val, found := v[name]
	if !found {
		return nil, fmt.Errorf("input not resolved: %s", name)
	}
	if val == nil {
		return nil, nil
	}
	if s, ok := sequenceOf(val); ok {
		return s, nil
	}
	return nil, fmt.Errorf("cannot convert type %T to slice for input %s", val, name)
}

// Strings retrieves a sequence value with every slot converted to string. Unset slots become "".
func (v Values) Strings(name string) ([]string, error) {
	slots, err := v.Slice(name)
	if err != nil || slots == nil {
		return nil, err
	}

	out := make([]string, len(slots))
	for i, slot := range slots {
		s, err := Values{name: slot}.String(name)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}
