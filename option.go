// FILE: lixenwraith/input/option.go
package input

// Request is anything Resolve accepts: a Key, Keys, or an Option.
type Request interface {
	request()
}

// Key requests one input by name, typed as String.
type Key string

// Keys requests the first non-empty of several inputs, typed as String.
type Keys []string

// ModifierFunc post-processes a fully resolved value.
type ModifierFunc func(value any) (any, error)

// Option is the full descriptor for one input.
type Option struct {
	// Key is the input name. Tried before Keys when both are set.
	Key string

	// Keys are further candidate names, first non-empty value wins.
	Keys []string

	// Type defaults to String.
	Type Type

	// Required fails resolution when no value (or, for sequences, any slot) remains after defaulting.
	Required bool

	// Default is used when no value is parsed. A slice or array is a per-slot default for sequence types.
	// Defaults are not checked against Type.
	Default any

	// Modifier replaces the final value with its result.
	Modifier ModifierFunc

	list bool // candidates came from a key list, set by normalize
}

func (Key) request()    {}
func (Keys) request()   {}
func (Option) request() {}

// candidates returns the ordered non-empty key names.
func (o Option) candidates() []string {
	keys := make([]string, 0, len(o.Keys)+1)
	if o.Key != "" {
		keys = append(keys, o.Key)
	}
	for _, k := range o.Keys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// hasListKeys reports whether Keys holds at least one usable name.
func (o Option) hasListKeys() bool {
	for _, k := range o.Keys {
		if k != "" {
			return true
		}
	}
	return false
}

// normalize maps every request shape to one validated Option with Keys set and Key cleared.
// A Keys request, or an Option with usable Keys, is a list: its lookup skips empty values.
func normalize(req Request) (Option, error) {
	var opt Option

	switch r := req.(type) {
	case Key:
		opt = Option{Key: string(r)}
	case Keys:
		opt = Option{Keys: r, list: true}
	case Option:
		opt = r
		opt.list = r.hasListKeys()
	case *Option:
		if r == nil {
			return Option{}, ErrNoKey
		}
		opt = *r
		opt.list = r.hasListKeys()
	default:
		return Option{}, ErrNoKey
	}

	keys := opt.candidates()
	if len(keys) == 0 {
		return Option{}, ErrNoKey
	}
	opt.Key = ""
	opt.Keys = keys

	if opt.Type.isZero() {
		opt.Type = Of(String)
	}
	if err := opt.Type.validate(); err != nil {
		return Option{}, err
	}

	return opt, nil
}
