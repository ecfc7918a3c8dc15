// FILE: lixenwraith/input/convenience_test.go
package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testActionYAML = `
name: deploy
description: Deploy a service
inputs:
  environment:
    description: Target environment
    required: true
  replicas:
    description: Replica count
    default: "2"
  region:
    default: eu-west-1
`

// TestQuickFunctions tests the package level shortcuts
func TestQuickFunctions(t *testing.T) {
	t.Run("Resolve", func(t *testing.T) {
		t.Setenv("INPUT_QUICK_MODE", "fast")

		v, err := Resolve(Key("quick mode"))
		require.NoError(t, err)
		assert.Equal(t, "fast", v)
	})

	t.Run("ResolveMany", func(t *testing.T) {
		t.Setenv("INPUT_QUICK_A", "1")
		t.Setenv("INPUT_QUICK_B", "true")

		values, err := ResolveMany(map[string]Request{
			"a": Option{Key: "quick a", Type: Of(Number)},
			"b": Option{Key: "quick b", Type: Of(Bool)},
		})
		require.NoError(t, err)
		assert.Equal(t, Values{"a": 1.0, "b": true}, values)
	})

	t.Run("MustResolve", func(t *testing.T) {
		t.Setenv("INPUT_QUICK_MUST", "ok")
		assert.Equal(t, "ok", MustResolve(Key("quick must")))

		assert.Panics(t, func() {
			MustResolve(Option{Key: "quick missing input", Required: true})
		})
	})

	t.Run("Quick", func(t *testing.T) {
		tmpDir := t.TempDir()
		actionPath := filepath.Join(tmpDir, "action.yml")
		os.WriteFile(actionPath, []byte(testActionYAML), 0644)
		envFile := filepath.Join(tmpDir, ".env")
		os.WriteFile(envFile, []byte("INPUT_ENVIRONMENT=staging\nINPUT_REPLICAS=5\n"), 0644)

		values, err := Quick(actionPath, envFile)
		require.NoError(t, err)
		assert.Equal(t, Values{
			"environment": "staging",
			"replicas":    "5",
			"region":      "eu-west-1",
		}, values)
	})

	t.Run("QuickMissingEnvFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		actionPath := filepath.Join(tmpDir, "action.yml")
		os.WriteFile(actionPath, []byte(testActionYAML), 0644)
		t.Setenv("INPUT_ENVIRONMENT", "prod")

		values, err := Quick(actionPath, filepath.Join(tmpDir, "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "prod", values["environment"])
		assert.Equal(t, "2", values["replicas"])
	})

	t.Run("QuickRequiredEmpty", func(t *testing.T) {
		tmpDir := t.TempDir()
		actionPath := filepath.Join(tmpDir, "action.yml")
		os.WriteFile(actionPath, []byte(testActionYAML), 0644)
		t.Setenv("INPUT_ENVIRONMENT", "")

		// Present but empty satisfies required for strings
		values, err := Quick(actionPath, "")
		require.NoError(t, err)
		assert.Equal(t, "", values["environment"])
	})

	t.Run("QuickRequiredMissing", func(t *testing.T) {
		tmpDir := t.TempDir()
		actionPath := filepath.Join(tmpDir, "action.yml")
		os.WriteFile(actionPath, []byte(testActionYAML), 0644)
		t.Setenv("INPUT_ENVIRONMENT", "")
		os.Unsetenv("INPUT_ENVIRONMENT")

		_, err := Quick(actionPath, "")
		assert.ErrorIs(t, err, ErrRequired)
		assert.Contains(t, err.Error(), "config `environment`:")
	})

	t.Run("QuickMissingAction", func(t *testing.T) {
		_, err := Quick(filepath.Join(t.TempDir(), "action.yml"), "")
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

// TestDebug tests the resolution report
func TestDebug(t *testing.T) {
	r := NewWithOptions(MapSource{
		"INPUT_MODE":  "fast",
		"INPUT_COUNT": "many",
	}, DefaultOptions())

	out := r.Debug(map[string]Request{
		"mode":    nil,
		"count":   Option{Type: Of(Number)},
		"absent":  Option{Default: "fallback"},
		"invalid": Option{Key: "mode", Type: Seq()},
	})

	assert.Contains(t, out, "Input Debug Info:")
	assert.Contains(t, out, `Raw: "fast" (from INPUT_MODE)`)
	assert.Contains(t, out, "Value: \"fast\"")
	assert.Contains(t, out, "input has to be a valid number")
	assert.Contains(t, out, "Raw: <not provided>")
	assert.Contains(t, out, "Default: fallback")
	assert.Contains(t, out, "invalid option type")
}
