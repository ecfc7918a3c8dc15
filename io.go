// File: lixenwraith/input/io.go
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Dump writes the values to w in TOML format.
// Absent values are omitted and unset sequence slots are written as "".
func (v Values) Dump(w io.Writer) error {
	return toml.NewEncoder(w).Encode(v.tomlSafe())
}

// Save writes the values to path atomically. The format follows the file
// extension (.toml, .json, .yaml/.yml), TOML when unknown.
func (v Values) Save(path string) error {
	data, err := v.marshal(detectFileFormat(path))
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}

func (v Values) marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(map[string]any(v), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal values to JSON: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(map[string]any(v))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal values to YAML: %w", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		if err := v.Dump(&buf); err != nil {
			return nil, fmt.Errorf("failed to marshal values to TOML: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// tomlSafe drops nil values, which TOML cannot represent.
func (v Values) tomlSafe() map[string]any {
	out := make(map[string]any, len(v))
	for name, val := range v {
		if val == nil {
			continue
		}
		if slots, ok := val.([]any); ok {
			clean := make([]any, len(slots))
			for i, s := range slots {
				if s == nil {
					s = ""
				}
				clean[i] = s
			}
			val = clean
		}
		out[name] = val
	}
	return out
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
