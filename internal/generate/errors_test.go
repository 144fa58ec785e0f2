package generate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Divyanshgupta04/lern-deployment/internal/llm"
)

func TestNormalizeProviderError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantStatus int
	}{
		{"resource exhausted", errors.New("googleapi: RESOURCE_EXHAUSTED"), KindQuotaExceeded, 429},
		{"quota text", errors.New("You exceeded your current quota, please check your plan"), KindQuotaExceeded, 429},
		{"embedded 429 code", errors.New(`{"error":{"code":429,"message":"too many requests"}}`), KindQuotaExceeded, 429},
		{"lowercase quota", errors.New("daily quota reached"), KindQuotaExceeded, 429},
		{"typed rate limit", &llm.ErrRateLimit{Err: errors.New("slow down")}, KindQuotaExceeded, 429},
		{"invalid key", errors.New("API_KEY_INVALID"), KindConfigurationError, 500},
		{"key not valid", errors.New("API key not valid. Please pass a valid API key."), KindConfigurationError, 500},
		{"model 404", errors.New("models/gemini-x is not found for API version v1"), KindModelUnavailable, 500},
		{"bare 404", errors.New("unexpected status 404"), KindModelUnavailable, 500},
		{"anything else", errors.New("connection reset by peer"), KindUnknownProvider, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeProviderError(tt.err, "testing")
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.err.Error(), got.Raw)
			assert.NotContains(t, got.Message, tt.err.Error())
		})
	}
}

func TestNormalizedMessageNeverLeaksRawText(t *testing.T) {
	raw := errors.New("secret internal detail xyzzy")
	got := normalizeProviderError(raw, "generating test questions")
	assert.NotContains(t, got.Message, "xyzzy")
	assert.Contains(t, got.Raw, "xyzzy")
}

func TestRetriable(t *testing.T) {
	assert.True(t, (&Error{Kind: KindQuotaExceeded}).Retriable())
	assert.True(t, (&Error{Kind: KindUnknownProvider}).Retriable())
	assert.True(t, (&Error{Kind: KindMalformedResponse}).Retriable())
	assert.False(t, (&Error{Kind: KindConfigurationError}).Retriable())
	assert.False(t, (&Error{Kind: KindModelUnavailable}).Retriable())
	assert.False(t, (&Error{Kind: KindInvalidRequest}).Retriable())
}

func TestAsError(t *testing.T) {
	inner := &Error{Kind: KindQuotaExceeded, Status: 429, Message: "limit hit"}
	assert.Same(t, inner, AsError(inner))

	wrapped := AsError(errors.New("plain"))
	assert.Equal(t, KindUnknownProvider, wrapped.Kind)
	assert.Equal(t, 500, wrapped.Status)
}
