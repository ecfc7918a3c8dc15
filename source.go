// FILE: lixenwraith/input/source.go
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source provides raw input strings by variable name.
type Source interface {
	// Lookup returns the value for name and whether it was present.
	Lookup(name string) (string, bool)
}

// Env is a Source backed by the process environment.
type Env struct {
	lookup func(string) (string, bool)
}

// FromEnv returns a Source reading the current process environment.
func FromEnv() Env {
	return Env{lookup: os.LookupEnv}
}

// EnvFunc returns an Env backed by lookup instead of the process environment.
func EnvFunc(lookup func(string) (string, bool)) Env {
	return Env{lookup: lookup}
}

// Lookup implements Source.
func (e Env) Lookup(name string) (string, bool) {
	if e.lookup == nil {
		return "", false
	}
	return e.lookup(name)
}

// MapSource is a Source backed by a fixed map.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// chain queries its sources in order.
type chain []Source

// Chain returns a Source where the first source holding a name wins.
func Chain(sources ...Source) Source {
	flat := make(chain, 0, len(sources))
	for _, s := range sources {
		if s == nil {
			continue
		}
		if c, ok := s.(chain); ok {
			flat = append(flat, c...)
			continue
		}
		flat = append(flat, s)
	}
	return flat
}

// Lookup implements Source.
func (c chain) Lookup(name string) (string, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// FromEnvFile reads a .env style file into a MapSource without touching the process environment.
func FromEnvFile(path string) (MapSource, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat env file '%s': %w", path, err)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file '%s': %w", path, err)
	}
	return MapSource(vars), nil
}

// FromFile reads a TOML, JSON or YAML file into a MapSource.
// Nested tables become dot-joined names, scalars are stringified and
// lists are joined with newlines so they parse back as sequences.
func FromFile(path string) (MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read input file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	nested := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse TOML input file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("failed to parse JSON input file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse YAML input file '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, path)
	}

	src := make(MapSource)
	for name, value := range flattenMap(nested, "") {
		src[name] = stringify(value)
	}
	return src, nil
}

// stringify renders a decoded file value as a raw input string.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	// YAML accepts nearly anything, so it goes last
	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil && len(yamlTest) > 0 {
		return "yaml"
	}

	return ""
}
