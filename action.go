// FILE: lixenwraith/input/action.go
package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ActionInput is one input declared in action metadata.
type ActionInput struct {
	Name        string
	Description string
	Required    bool
	Default     *string // nil when no default is declared
	Deprecation string
}

// ActionMetadata is the subset of an action.yml the resolver uses.
type ActionMetadata struct {
	Name        string
	Description string
	Inputs      []ActionInput // in declaration order
}

type actionFile struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Inputs      yaml.Node `yaml:"inputs"`
}

type actionInputFile struct {
	Description        string  `yaml:"description"`
	Required           any     `yaml:"required"`
	Default            *string `yaml:"default"`
	DeprecationMessage string  `yaml:"deprecationMessage"`
}

// LoadActionMetadata reads an action.yml file.
func LoadActionMetadata(path string) (*ActionMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read action metadata '%s': %w", path, err)
	}

	meta, err := ParseActionMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse action metadata '%s': %w", path, err)
	}
	return meta, nil
}

// ParseActionMetadata parses action.yml content.
func ParseActionMetadata(data []byte) (*ActionMetadata, error) {
	var file actionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	meta := &ActionMetadata{
		Name:        file.Name,
		Description: file.Description,
	}

	if file.Inputs.Kind == 0 || file.Inputs.ShortTag() == "!!null" {
		return meta, nil // no inputs section
	}
	if file.Inputs.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: inputs must be a mapping", file.Inputs.Line)
	}

	content := file.Inputs.Content
	for i := 0; i+1 < len(content); i += 2 {
		keyNode, valueNode := content[i], content[i+1]

		var in actionInputFile
		if err := valueNode.Decode(&in); err != nil {
			return nil, fmt.Errorf("input %q: %w", keyNode.Value, err)
		}

		required, err := parseRequired(in.Required)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", keyNode.Value, err)
		}

		meta.Inputs = append(meta.Inputs, ActionInput{
			Name:        keyNode.Value,
			Description: in.Description,
			Required:    required,
			Default:     in.Default,
			Deprecation: in.DeprecationMessage,
		})
	}

	return meta, nil
}

// parseRequired accepts a YAML boolean or a boolean literal string.
func parseRequired(v any) (bool, error) {
	switch r := v.(type) {
	case nil:
		return false, nil
	case bool:
		return r, nil
	case string:
		b, err := strconv.ParseBool(r)
		if err != nil {
			return false, fmt.Errorf("required: %w", ErrInvalidBoolean)
		}
		return b, nil
	default:
		return false, fmt.Errorf("required: unexpected type %T", v)
	}
}

// Entries returns one String entry per declared input, in declaration order.
func (m *ActionMetadata) Entries() []Entry {
	entries := make([]Entry, len(m.Inputs))
	for i, in := range m.Inputs {
		opt := Option{Key: in.Name, Required: in.Required}
		if in.Default != nil {
			opt.Default = *in.Default
		}
		entries[i] = Entry{Name: in.Name, Request: opt}
	}
	return entries
}
