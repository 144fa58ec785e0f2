package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain string", "hello", "hello"},
		{"nil", nil, ""},
		{"content wrapper", map[string]any{"content": "X"}, "X"},
		{"nested content wrapper", map[string]any{"content": map[string]any{"content": "X"}}, "X"},
		{"first string property", map[string]any{"text": "Y"}, "Y"},
		{"no string property", map[string]any{"n": float64(3)}, `{"n":3}`},
		{"number", float64(5), "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeString(tt.in))
		})
	}
}

func TestSanitizeStringFixedPoint(t *testing.T) {
	inputs := []any{
		map[string]any{"content": "X"},
		map[string]any{"content": map[string]any{"content": "X"}},
		"already clean",
	}
	for _, in := range inputs {
		once := sanitizeString(in)
		twice := sanitizeString(once)
		assert.Equal(t, once, twice)
	}
}

func TestSanitizeStrings(t *testing.T) {
	in := []any{"A", map[string]any{"content": "B"}, nil}
	assert.Equal(t, []string{"A", "B", ""}, sanitizeStrings(in))

	assert.Nil(t, sanitizeStrings(nil))
	assert.Equal(t, []string{"solo"}, sanitizeStrings("solo"))
}

func TestStripCodeFences(t *testing.T) {
	raw := "```json\n[{\"a\":1}]\n```"
	assert.Equal(t, `[{"a":1}]`, stripCodeFences(raw))

	mixedCase := "```JSON\n{}\n```"
	assert.Equal(t, "{}", stripCodeFences(mixedCase))
}

func TestParseJSON(t *testing.T) {
	var v []map[string]any
	assert.NoError(t, parseJSON("```json\n[{\"x\":\"y\"}]\n```", &v))
	assert.Len(t, v, 1)

	assert.Error(t, parseJSON("", &v))
	assert.Error(t, parseJSON("   ", &v))
	assert.Error(t, parseJSON("not json", &v))
}
