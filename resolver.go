// FILE: lixenwraith/input/resolver.go
package input

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DefaultPrefix is prepended to canonical input variable names.
const DefaultPrefix = "INPUT_"

// NameTransformFunc converts an input key to its canonical variable name
type NameTransformFunc func(key string) string

// Options configures how a Resolver looks up raw values
type Options struct {
	// Prefix is prepended to canonical names. Ignored when NameTransform is set.
	// Default: "INPUT_"
	Prefix string

	// NameTransform customizes how keys map to canonical variable names.
	// If nil, spaces become underscores, the key is upper-cased and Prefix is prepended.
	NameTransform NameTransformFunc

	// LineSeparator rejoins trimmed lines of multi-line values.
	// Default: platform line separator
	LineSeparator string
}

// DefaultOptions returns the standard resolver options
func DefaultOptions() Options {
	return Options{
		Prefix:        DefaultPrefix,
		LineSeparator: platformLineSeparator(),
	}
}

// Resolver turns requests into typed values using a Source.
// A Resolver holds no mutable state and is safe for concurrent use
// if its Source is.
type Resolver struct {
	source    Source
	transform NameTransformFunc
	lineSep   string
	log       *zap.Logger
}

// New creates a Resolver reading the process environment with default options.
func New() *Resolver {
	return NewWithOptions(FromEnv(), DefaultOptions())
}

// NewWithOptions creates a Resolver over src.
func NewWithOptions(src Source, opts Options) *Resolver {
	transform := opts.NameTransform
	if transform == nil {
		transform = defaultNameTransform(opts.Prefix)
	}
	sep := opts.LineSeparator
	if sep == "" {
		sep = platformLineSeparator()
	}
	if src == nil {
		src = MapSource{}
	}
	return &Resolver{
		source:    src,
		transform: transform,
		lineSep:   sep,
		log:       zap.NewNop(),
	}
}

// WithLogger returns a copy of r logging to l.
func (r *Resolver) WithLogger(l *zap.Logger) *Resolver {
	clone := *r
	if l == nil {
		l = zap.NewNop()
	}
	clone.log = l
	return &clone
}

// lookupKey fetches one key, trying the canonical name before the raw key.
func (r *Resolver) lookupKey(key string) (value, name string, found bool) {
	for _, candidate := range []string{r.transform(key), key} {
		if v, ok := r.source.Lookup(candidate); ok {
			return normalizeLines(v, r.lineSep), candidate, true
		}
	}
	return "", "", false
}

// Lookup returns the raw value for the given keys.
// A single key is found even when its value is empty. With several keys the
// first non-empty value wins, and the result is absent if every value is empty.
func (r *Resolver) Lookup(keys ...string) (value, name string, found bool) {
	if len(keys) == 1 {
		return r.lookupKey(keys[0])
	}
	return r.lookupFirst(keys)
}

// lookupFirst returns the first non-empty value among keys.
func (r *Resolver) lookupFirst(keys []string) (value, name string, found bool) {
	for _, key := range keys {
		if v, n, ok := r.lookupKey(key); ok && v != "" {
			return v, n, true
		}
	}
	return "", "", false
}

// lookupOption fetches the raw value for a normalized option.
// Key lists skip empty values even when they hold a single candidate.
func (r *Resolver) lookupOption(opt Option) (value, name string, found bool) {
	if opt.list {
		return r.lookupFirst(opt.Keys)
	}
	return r.Lookup(opt.Keys...)
}

// Resolve runs one request through normalization, lookup, parsing and reconciliation.
func (r *Resolver) Resolve(req Request) (any, error) {
	opt, err := normalize(req)
	if err != nil {
		return nil, err
	}

	raw, name, found := r.lookupOption(opt)

	var parsed any
	if found {
		parsed, err = Parse(raw, opt.Type)
		if err != nil {
			r.log.Debug("input parse failed",
				zap.String("variable", name),
				zap.Stringer("type", opt.Type),
				zap.Error(err))
			return nil, err
		}
	}

	value, err := reconcile(resolution{opt: opt, raw: raw, found: found, parsed: parsed})
	if err != nil {
		return nil, err
	}

	r.log.Debug("input resolved",
		zap.Strings("keys", opt.Keys),
		zap.String("variable", name),
		zap.Bool("found", found),
		zap.Stringer("type", opt.Type),
		zap.Bool("has_default", opt.Default != nil))

	return value, nil
}

// Entry is one named request in a batch.
type Entry struct {
	Name    string
	Request Request
}

// ResolveEntries resolves entries in order. A nil or empty Request resolves Name as a key
// and an Option without keys uses Name. The first failure is returned prefixed with the entry name.
func (r *Resolver) ResolveEntries(entries []Entry) (Values, error) {
	values := make(Values, len(entries))
	for _, e := range entries {
		v, err := r.Resolve(entryRequest(e))
		if err != nil {
			return nil, fmt.Errorf("config `%s`: %w", e.Name, err)
		}
		values[e.Name] = v
	}
	return values, nil
}

// ResolveMany resolves a mapping of name to request, in name order.
func (r *Resolver) ResolveMany(requests map[string]Request) (Values, error) {
	names := make([]string, 0, len(requests))
	for name := range requests {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Name: name, Request: requests[name]}
	}
	return r.ResolveEntries(entries)
}

func entryRequest(e Entry) Request {
	switch req := e.Request.(type) {
	case nil:
		return Key(e.Name)
	case Key:
		if req == "" {
			return Key(e.Name)
		}
		return req
	case Keys:
		if !(Option{Keys: req}).hasListKeys() {
			return Key(e.Name)
		}
		return req
	case Option:
		if len(req.candidates()) == 0 {
			req.Key = e.Name
		}
		return req
	case *Option:
		if req == nil {
			return Key(e.Name)
		}
		opt := *req
		if len(opt.candidates()) == 0 {
			opt.Key = e.Name
		}
		return opt
	default:
		return req
	}
}
