// File: lixenwraith/input/convenience.go
package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Resolve resolves one request against the process environment.
func Resolve(req Request) (any, error) {
	return New().Resolve(req)
}

// ResolveMany resolves a batch against the process environment.
func ResolveMany(requests map[string]Request) (Values, error) {
	return New().ResolveMany(requests)
}

// MustResolve is like Resolve but panics on error
func MustResolve(req Request) any {
	v, err := Resolve(req)
	if err != nil {
		panic(fmt.Sprintf("input resolution failed: %v", err))
	}
	return v
}

// Quick builds a resolver over the process environment plus an optional env file
// and resolves every input declared in the action metadata at actionPath.
// A missing env file is not an error.
func Quick(actionPath, envFile string) (Values, error) {
	meta, err := LoadActionMetadata(actionPath)
	if err != nil {
		return nil, err
	}

	b := NewBuilder()
	if envFile != "" {
		b = b.WithEnvFile(envFile)
	}
	r, err := b.Build()
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		return nil, err
	}

	return r.ResolveEntries(meta.Entries())
}

// Debug returns a formatted report of how each request resolves, without failing on errors.
func (r *Resolver) Debug(requests map[string]Request) string {
	names := make([]string, 0, len(requests))
	for name := range requests {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Input Debug Info:\n")

	for _, name := range names {
		req := entryRequest(Entry{Name: name, Request: requests[name]})
		fmt.Fprintf(&b, "  %s:\n", name)

		opt, err := normalize(req)
		if err != nil {
			fmt.Fprintf(&b, "    Error: %v\n", err)
			continue
		}
		fmt.Fprintf(&b, "    Keys: %s\n", strings.Join(opt.Keys, ", "))
		fmt.Fprintf(&b, "    Type: %s\n", opt.Type)

		raw, variable, found := r.lookupOption(opt)
		if found {
			fmt.Fprintf(&b, "    Raw: %q (from %s)\n", raw, variable)
		} else {
			b.WriteString("    Raw: <not provided>\n")
		}
		if opt.Default != nil {
			fmt.Fprintf(&b, "    Default: %v\n", opt.Default)
		}

		value, err := r.Resolve(req)
		if err != nil {
			fmt.Fprintf(&b, "    Error: %v\n", err)
			continue
		}
		fmt.Fprintf(&b, "    Value: %#v\n", value)
	}

	return b.String()
}
