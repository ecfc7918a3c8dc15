// File: lixenwraith/input/helper.go
package input

import (
	"regexp"
	"runtime"
	"strings"
)

// listSeparator matches ",\n", "\n" or "," (with optional \r before \n), leftmost-first.
var listSeparator = regexp.MustCompile(`,\r?\n|\r?\n|,`)

// platformLineSeparator is the line separator values are rejoined with.
func platformLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// normalizeLines trims every line of value and rejoins them with sep.
func normalizeLines(value, sep string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return strings.TrimSpace(value)
	}
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, sep)
}

// splitList splits a raw sequence value into trimmed segments.
// One trailing empty segment, left by a trailing separator, is dropped.
func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := listSeparator.Split(value, -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

// defaultNameTransform builds the canonical variable name for a key:
// spaces become underscores, upper-cased, prefixed.
func defaultNameTransform(prefix string) NameTransformFunc {
	return func(key string) string {
		return prefix + strings.ToUpper(strings.ReplaceAll(key, " ", "_"))
	}
}

// flattenMap converts a nested map[string]any to a flat map[string]any with dot-notation paths.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}
