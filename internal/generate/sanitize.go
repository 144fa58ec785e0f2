package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?i)```json")

// stripCodeFences removes markdown code fences a model sometimes wraps its
// JSON output in, despite being asked for raw JSON.
func stripCodeFences(raw string) string {
	cleaned := codeFenceRe.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// parseJSON decodes provider output into v after stripping code fences.
// Empty output and undecodable output are the only hard failures here;
// shape defects inside a decoded value are repaired by sanitization instead.
func parseJSON(raw string, v any) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("empty response")
	}
	cleaned := stripCodeFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}
	return nil
}

// sanitizeString coerces a decoded JSON value that should be a plain string.
// The provider occasionally wraps text in an object or nests it; the repair
// rules are: strings pass through, nil becomes "", an object yields its
// "content" string field if present, else its first string-valued property,
// else its JSON serialization. Applying the result to sanitizeString again
// returns it unchanged.
func sanitizeString(v any) string {
	switch val := sanitizeValue(v).(type) {
	case string:
		return val
	default:
		return stringify(val)
	}
}

// sanitizeValue applies the repair rules recursively, preserving arrays.
func sanitizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitizeValue(item)
		}
		return out
	case map[string]any:
		if c, ok := val["content"]; ok {
			return sanitizeValue(c)
		}
		for _, item := range val {
			if s, ok := item.(string); ok {
				return s
			}
		}
		return stringify(val)
	default:
		return stringify(val)
	}
}

// sanitizeStrings coerces a decoded JSON array into plain strings.
func sanitizeStrings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		if v == nil {
			return nil
		}
		return []string{sanitizeString(v)}
	}
	out := make([]string, len(arr))
	for i, item := range arr {
		out[i] = sanitizeString(item)
	}
	return out
}

func stringify(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
