// FILE: medit/config/validators_test.go
package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int         { return &n }
func i64Ptr(n int64) *int64     { return &n }
func f64Ptr(f float64) *float64 { return &f }

// TestValidateString tests the string validator constraints
func TestValidateString(t *testing.T) {
	t.Run("AcceptsString", func(t *testing.T) {
		v := ValidateString(StringRule{})
		out, err := v("hello", "x", "commands.separator")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("NilUsesDefault", func(t *testing.T) {
		v := ValidateString(StringRule{})
		out, err := v(nil, "fallback", "commands.separator")
		require.NoError(t, err)
		assert.Equal(t, "fallback", out)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		v := ValidateString(StringRule{Label: "Command separator"})
		_, err := v(json.Number("5"), ",", "commands.separator")
		require.Error(t, err)
		assert.Equal(t, "Command separator must be a string.", err.Error())
	})

	t.Run("NonEmpty", func(t *testing.T) {
		v := ValidateString(StringRule{Label: "Command separator", NonEmpty: true})
		_, err := v("", ",", "commands.separator")
		require.Error(t, err)
		assert.Equal(t, "Command separator must not be empty.", err.Error())
	})

	t.Run("NoNewlines", func(t *testing.T) {
		v := ValidateString(StringRule{Label: "Command separator", NoNewlines: true})
		for _, bad := range []string{"a\nb", "a\rb"} {
			_, err := v(bad, ",", "commands.separator")
			require.Error(t, err)
			assert.Equal(t, "Command separator must not contain newlines.", err.Error())
		}
	})

	t.Run("TrimRunsBeforeChecks", func(t *testing.T) {
		v := ValidateString(StringRule{NonEmpty: true, Trim: true})
		_, err := v("   ", ",", "commands.separator")
		assert.Error(t, err)

		out, err := v("  ; ", ",", "commands.separator")
		require.NoError(t, err)
		assert.Equal(t, ";", out)
	})

	t.Run("LengthBoundsCountCharacters", func(t *testing.T) {
		v := ValidateString(StringRule{MinLen: intPtr(2), MaxLen: intPtr(5)})

		_, err := v("é", "", "ui.theme")
		require.Error(t, err)
		assert.Equal(t, "ui.theme must be at least 2 characters.", err.Error())

		out, err := v("héllo", "", "ui.theme")
		require.NoError(t, err)
		assert.Equal(t, "héllo", out)

		_, err = v("toolong", "", "ui.theme")
		require.Error(t, err)
		assert.Equal(t, "ui.theme must be at most 5 characters.", err.Error())
	})

	t.Run("LabelFallsBackToFieldName", func(t *testing.T) {
		v := ValidateString(StringRule{NonEmpty: true})
		_, err := v("", ",", "commands.separator")
		require.Error(t, err)
		assert.Equal(t, "commands.separator must not be empty.", err.Error())
	})
}

// TestValidateInt tests the integer validator, including boolean rejection
func TestValidateInt(t *testing.T) {
	t.Run("AcceptsIntegerForms", func(t *testing.T) {
		v := ValidateInt(IntRule{})

		out, err := v(json.Number("42"), 0, "editor.tabsize")
		require.NoError(t, err)
		assert.Equal(t, int64(42), out)

		out, err = v(7, 0, "editor.tabsize")
		require.NoError(t, err)
		assert.Equal(t, int64(7), out)
	})

	t.Run("NilUsesDefault", func(t *testing.T) {
		v := ValidateInt(IntRule{})
		out, err := v(nil, 4, "editor.tabsize")
		require.NoError(t, err)
		assert.Equal(t, int64(4), out)
	})

	t.Run("RejectsBool", func(t *testing.T) {
		v := ValidateInt(IntRule{})
		_, err := v(true, 0, "editor.tabsize")
		require.Error(t, err)
		assert.Equal(t, "editor.tabsize must be an integer.", err.Error())
	})

	t.Run("RejectsFloatForms", func(t *testing.T) {
		v := ValidateInt(IntRule{})
		for _, bad := range []json.Number{"2.5", "2.0", "1e3"} {
			_, err := v(bad, 0, "editor.tabsize")
			assert.Error(t, err, "number %s should not be an integer", bad)
		}
	})

	t.Run("InclusiveBounds", func(t *testing.T) {
		v := ValidateInt(IntRule{Label: "Tab size", Min: i64Ptr(1), Max: i64Ptr(8)})

		out, err := v(json.Number("1"), 4, "editor.tabsize")
		require.NoError(t, err)
		assert.Equal(t, int64(1), out)

		_, err = v(json.Number("0"), 4, "editor.tabsize")
		require.Error(t, err)
		assert.Equal(t, "Tab size must be >= 1.", err.Error())

		_, err = v(json.Number("9"), 4, "editor.tabsize")
		require.Error(t, err)
		assert.Equal(t, "Tab size must be <= 8.", err.Error())
	})
}

// TestValidateNumber tests the numeric validator
func TestValidateNumber(t *testing.T) {
	t.Run("AcceptsIntAndFloatForms", func(t *testing.T) {
		v := ValidateNumber(NumberRule{})

		out, err := v(json.Number("2"), 0.0, "ui.lineheight")
		require.NoError(t, err)
		assert.Equal(t, float64(2), out)

		out, err = v(json.Number("1.5"), 0.0, "ui.lineheight")
		require.NoError(t, err)
		assert.Equal(t, 1.5, out)
	})

	t.Run("RejectsBool", func(t *testing.T) {
		v := ValidateNumber(NumberRule{})
		_, err := v(false, 0.0, "ui.lineheight")
		require.Error(t, err)
		assert.Equal(t, "ui.lineheight must be a number.", err.Error())
	})

	t.Run("InclusiveBounds", func(t *testing.T) {
		v := ValidateNumber(NumberRule{Min: f64Ptr(0.5), Max: f64Ptr(3)})

		_, err := v(json.Number("0.4"), 1.0, "ui.lineheight")
		require.Error(t, err)
		assert.Equal(t, "ui.lineheight must be >= 0.5.", err.Error())

		_, err = v(json.Number("3.1"), 1.0, "ui.lineheight")
		require.Error(t, err)
		assert.Equal(t, "ui.lineheight must be <= 3.", err.Error())
	})
}

// TestValidateBool tests the boolean validator
func TestValidateBool(t *testing.T) {
	v := ValidateBool(BoolRule{Label: "Word wrap"})

	out, err := v(true, false, "editor.wordwrap")
	require.NoError(t, err)
	assert.Equal(t, true, out)

	out, err = v(nil, true, "editor.wordwrap")
	require.NoError(t, err)
	assert.Equal(t, true, out)

	_, err = v(json.Number("1"), false, "editor.wordwrap")
	require.Error(t, err)
	assert.Equal(t, "Word wrap must be a boolean.", err.Error())
}

// TestValidateOneOf tests enum membership
func TestValidateOneOf(t *testing.T) {
	t.Run("Member", func(t *testing.T) {
		v := ValidateOneOf("", "dark", "light")
		out, err := v("dark", "dark", "ui.theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", out)
	})

	t.Run("NonMember", func(t *testing.T) {
		v := ValidateOneOf("Theme", "dark", "light")
		_, err := v("solarized", "dark", "ui.theme")
		require.Error(t, err)
		assert.Equal(t, `Theme must be one of: "dark", "light".`, err.Error())
	})

	t.Run("NumericChoicesMatchJSONNumbers", func(t *testing.T) {
		v := ValidateOneOf("", 2, 4, 8)
		out, err := v(json.Number("4"), 4, "editor.tabsize")
		require.NoError(t, err)
		assert.Equal(t, json.Number("4"), out)

		_, err = v(json.Number("3"), 4, "editor.tabsize")
		require.Error(t, err)
		assert.Equal(t, "editor.tabsize must be one of: 2, 4, 8.", err.Error())
	})

	t.Run("NilUsesDefault", func(t *testing.T) {
		v := ValidateOneOf("", "a", "b")
		out, err := v(nil, "b", "x.y")
		require.NoError(t, err)
		assert.Equal(t, "b", out)
	})

	t.Run("NoChoicesPanics", func(t *testing.T) {
		assert.Panics(t, func() { ValidateOneOf("Theme") })
	})
}

// TestValidateList tests the list validator
func TestValidateList(t *testing.T) {
	t.Run("AcceptsList", func(t *testing.T) {
		v := ValidateList(ListRule{})
		out, err := v([]any{"a", "b"}, []any{}, "files.exclude")
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, out)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		v := ValidateList(ListRule{})
		_, err := v("nope", []any{}, "files.exclude")
		require.Error(t, err)
		assert.Equal(t, "files.exclude must be a list.", err.Error())
	})

	t.Run("ItemBounds", func(t *testing.T) {
		v := ValidateList(ListRule{MinItems: intPtr(1), MaxItems: intPtr(2)})

		_, err := v([]any{}, []any{}, "files.exclude")
		require.Error(t, err)
		assert.Equal(t, "files.exclude must have at least 1 items.", err.Error())

		_, err = v([]any{1, 2, 3}, []any{}, "files.exclude")
		require.Error(t, err)
		assert.Equal(t, "files.exclude must have at most 2 items.", err.Error())
	})
}

// TestValidateObject tests the object validator
func TestValidateObject(t *testing.T) {
	t.Run("CopiesInput", func(t *testing.T) {
		v := ValidateObject(ObjectRule{})
		in := map[string]any{"k": "v"}
		out, err := v(in, map[string]any{}, "keys.bindings")
		require.NoError(t, err)

		outMap, ok := out.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, in, outMap)

		outMap["k"] = "changed"
		assert.Equal(t, "v", in["k"])
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		v := ValidateObject(ObjectRule{Label: "Key bindings"})
		_, err := v([]any{}, map[string]any{}, "keys.bindings")
		require.Error(t, err)
		assert.Equal(t, "Key bindings must be an object.", err.Error())
	})
}
