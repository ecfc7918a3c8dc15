// FILE: lixenwraith/input/reconcile_test.go
package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReconcile(t *testing.T, opt Option, raw string, found bool) any {
	t.Helper()
	v, err := reconcileRaw(opt, raw, found)
	require.NoError(t, err)
	return v
}

func reconcileRaw(opt Option, raw string, found bool) (any, error) {
	opt, err := normalize(opt)
	if err != nil {
		return nil, err
	}
	var parsed any
	if found {
		if parsed, err = Parse(raw, opt.Type); err != nil {
			return nil, err
		}
	}
	return reconcile(resolution{opt: opt, raw: raw, found: found, parsed: parsed})
}

// TestReconcileScalar tests default substitution for scalar types
func TestReconcileScalar(t *testing.T) {
	t.Run("ParsedWins", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: Of(Number), Default: 5.0}, "3", true)
		assert.Equal(t, 3.0, v)
	})

	t.Run("DefaultWhenAbsent", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: Of(Number), Default: 5.0}, "", false)
		assert.Equal(t, 5.0, v)
	})

	t.Run("DefaultWhenEmptyNonString", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: Of(Bool), Default: true}, "", true)
		assert.Equal(t, true, v)
	})

	t.Run("DefaultIsUntyped", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: Of(Bool), Default: "not a bool"}, "", false)
		assert.Equal(t, "not a bool", v)
	})

	t.Run("NilWithoutDefault", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: Of(Number)}, "", false)
		assert.Nil(t, v)
	})

	t.Run("EmptyStringBeatsDefault", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Default: "fallback"}, "", true)
		assert.Equal(t, "", v)
	})

	t.Run("EmptyStringSatisfiesRequired", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Required: true, Default: "fallback"}, "", true)
		assert.Equal(t, "", v)
	})

	t.Run("AbsentStringTakesDefault", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Default: "fallback"}, "", false)
		assert.Equal(t, "fallback", v)
	})
}

// TestReconcileSequence tests slot merging for arrays and tuples
func TestReconcileSequence(t *testing.T) {
	tests := []struct {
		name     string
		opt      Option
		raw      string
		found    bool
		expected any
	}{
		{
			name:     "ArrayNoDefault",
			opt:      Option{Type: ArrayOf(String)},
			raw:      "a,b",
			found:    true,
			expected: []any{"a", "b"},
		},
		{
			name:     "ArrayEmptyNoDefault",
			opt:      Option{Type: ArrayOf(String)},
			raw:      "",
			found:    true,
			expected: []any{},
		},
		{
			name:     "ArrayEmptyWithDefault",
			opt:      Option{Type: ArrayOf(String), Default: []string{"x", "y"}},
			raw:      "",
			found:    true,
			expected: []any{"x", "y"},
		},
		{
			name:     "ArrayAbsentNoDefault",
			opt:      Option{Type: ArrayOf(String)},
			found:    false,
			expected: nil,
		},
		{
			name:     "ArrayAbsentWithDefault",
			opt:      Option{Type: ArrayOf(String), Default: []string{"x"}},
			found:    false,
			expected: []any{"x"},
		},
		{
			name:     "ArrayDefaultFillsLeadingGap",
			opt:      Option{Type: ArrayOf(String), Default: []string{"maximilian"}},
			raw:      "\nRichard",
			found:    true,
			expected: []any{"maximilian", "Richard"},
		},
		{
			name:     "ArrayDefaultExtendsResult",
			opt:      Option{Type: ArrayOf(Number), Default: []float64{9, 9, 9}},
			raw:      "1",
			found:    true,
			expected: []any{1.0, 9.0, 9.0},
		},
		{
			name:     "ArrayShorterDefault",
			opt:      Option{Type: ArrayOf(Number), Default: []float64{9}},
			raw:      "1,2,3",
			found:    true,
			expected: []any{1.0, 2.0, 3.0},
		},
		{
			name:     "ArrayScalarDefaultFillsGaps",
			opt:      Option{Type: ArrayOf(String), Default: "z"},
			raw:      "a,,c",
			found:    true,
			expected: []any{"a", "z", "c"},
		},
		{
			name:     "ArrayScalarDefaultAbsent",
			opt:      Option{Type: ArrayOf(String), Default: "z"},
			found:    false,
			expected: nil,
		},
		{
			name:     "TuplePartialWithDefault",
			opt:      Option{Type: TupleOf(String, Bool, String), Default: []any{"d", false, "e"}},
			raw:      "a,,c",
			found:    true,
			expected: []any{"a", false, "c"},
		},
		{
			name:     "TupleShortRawScalarDefault",
			opt:      Option{Type: TupleOf(Number, Number, Number), Default: 0.0},
			raw:      "1",
			found:    true,
			expected: []any{1.0, 0.0, 0.0},
		},
		{
			name:     "TupleShortRawNoDefault",
			opt:      Option{Type: TupleOf(String, Number)},
			raw:      "a",
			found:    true,
			expected: []any{"a", nil},
		},
		{
			name:     "TupleDefaultLongerThanType",
			opt:      Option{Type: TupleOf(String, String), Default: []string{"x", "y", "z"}},
			raw:      "a",
			found:    true,
			expected: []any{"a", "y", "z"},
		},
		{
			name:     "TupleDefaultShorterThanType",
			opt:      Option{Type: TupleOf(String, String, String), Default: []string{"x"}},
			raw:      "",
			found:    true,
			expected: []any{"x", nil, nil},
		},
		{
			name:     "TupleAbsentWithDefault",
			opt:      Option{Type: TupleOf(String, Number), Default: []any{"x"}},
			found:    false,
			expected: []any{"x", nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opt.Key = "k"
			v := mustReconcile(t, tt.opt, tt.raw, tt.found)
			assert.Equal(t, tt.expected, v)
		})
	}

	t.Run("DefaultNotAliased", func(t *testing.T) {
		def := []any{"x", "y"}
		v := mustReconcile(t, Option{Key: "k", Type: ArrayOf(String), Default: def}, "", false)
		v.([]any)[0] = "changed"
		assert.Equal(t, "x", def[0])
	})

	t.Run("ByteSliceIsScalarDefault", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: ArrayOf(String), Default: []byte("b")}, "a,", true)
		assert.Equal(t, []any{"a"}, v)
	})
}

// TestReconcileRequired tests required enforcement after defaulting
func TestReconcileRequired(t *testing.T) {
	t.Run("NotProvided", func(t *testing.T) {
		_, err := reconcileRaw(Option{Key: "xyz", Required: true}, "", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRequired)
		assert.EqualError(t, err, "input `xyz` is required but was not provided")
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := reconcileRaw(Option{Key: "empty", Type: Of(Number), Required: true}, "", true)
		require.Error(t, err)
		assert.EqualError(t, err, "input `empty` is required but empty")

		var reqErr *RequiredError
		require.True(t, errors.As(err, &reqErr))
		assert.True(t, reqErr.Empty)
	})

	t.Run("SatisfiedByDefault", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: Of(Number), Required: true, Default: 1.0}, "", false)
		assert.Equal(t, 1.0, v)
	})

	t.Run("KeyListInMessage", func(t *testing.T) {
		_, err := reconcileRaw(Option{Keys: []string{"a", "b"}, Required: true}, "", false)
		assert.EqualError(t, err, "input `a,b` is required but was not provided")
	})

	t.Run("IncompleteTuple", func(t *testing.T) {
		identity := Func(func(s string) (any, error) { return s, nil })
		_, err := reconcileRaw(Option{Key: "theta", Type: TupleOf(String, Number, Bool, identity), Required: true}, "a,0,true", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIncomplete)
		assert.Contains(t, err.Error(), "contains elements that could not be parsed")

		var incErr *IncompleteError
		require.True(t, errors.As(err, &incErr))
		assert.Equal(t, []int{3}, incErr.Missing)
	})

	t.Run("IncompleteFilledByDefault", func(t *testing.T) {
		v := mustReconcile(t, Option{
			Key:      "k",
			Type:     TupleOf(String, Number),
			Required: true,
			Default:  []any{"x", 2.0},
		}, "a", true)
		assert.Equal(t, []any{"a", 2.0}, v)
	})

	t.Run("EmptyArrayIsNotMissing", func(t *testing.T) {
		v := mustReconcile(t, Option{Key: "k", Type: ArrayOf(String), Required: true}, "", true)
		assert.Equal(t, []any{}, v)
	})

	t.Run("AbsentArray", func(t *testing.T) {
		_, err := reconcileRaw(Option{Key: "k", Type: ArrayOf(String), Required: true}, "", false)
		assert.ErrorIs(t, err, ErrRequired)
	})
}

// TestReconcileModifier tests post-processing of resolved values
func TestReconcileModifier(t *testing.T) {
	t.Run("ReplacesValue", func(t *testing.T) {
		v := mustReconcile(t, Option{
			Key:  "k",
			Type: ArrayOf(Number),
			Modifier: func(v any) (any, error) {
				sum := 0.0
				for _, e := range v.([]any) {
					sum += e.(float64)
				}
				return sum, nil
			},
		}, "1,2,3", true)
		assert.Equal(t, 6.0, v)
	})

	t.Run("SeesDefaultedValue", func(t *testing.T) {
		var seen any
		mustReconcile(t, Option{
			Key:      "k",
			Default:  "d",
			Modifier: func(v any) (any, error) { seen = v; return v, nil },
		}, "", false)
		assert.Equal(t, "d", seen)
	})

	t.Run("ErrorPropagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := reconcileRaw(Option{
			Key:      "k",
			Modifier: func(any) (any, error) { return nil, boom },
		}, "x", true)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("NotCalledWhenRequiredFails", func(t *testing.T) {
		called := false
		_, err := reconcileRaw(Option{
			Key:      "k",
			Required: true,
			Modifier: func(v any) (any, error) { called = true; return v, nil },
		}, "", false)
		assert.Error(t, err)
		assert.False(t, called)
	})
}
