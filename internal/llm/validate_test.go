package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionSchema() *Schema {
	return &Schema{
		Name: "validate-test-question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questionText": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []string{"questionText", "options"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	valid := json.RawMessage(`{"questionText":"Q","options":["A","B"]}`)
	assert.NoError(t, validateResponse(questionSchema(), valid))

	assert.NoError(t, validateResponse(nil, json.RawMessage(`whatever`)))
}

func TestValidateResponseRetainsContent(t *testing.T) {
	missing := json.RawMessage(`{"questionText":"Q"}`)
	err := validateResponse(questionSchema(), missing)
	require.Error(t, err)

	var invalid *ErrInvalidResponse
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, missing, invalid.Content)
}

func TestValidateResponseBadJSON(t *testing.T) {
	raw := json.RawMessage("```json\n{}\n```")
	err := validateResponse(questionSchema(), raw)
	require.Error(t, err)

	// Fenced output is not valid JSON, but the content survives for the
	// caller's repair pass.
	var invalid *ErrInvalidResponse
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, raw, invalid.Content)
}

func TestCompiledSchemaIsCached(t *testing.T) {
	s := questionSchema()
	first, err := getCompiledSchema(s)
	require.NoError(t, err)
	second, err := getCompiledSchema(s)
	require.NoError(t, err)
	assert.Same(t, first, second)
}
