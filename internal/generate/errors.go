package generate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Divyanshgupta04/lern-deployment/internal/llm"
)

// Kind classifies a failure into a stable, machine-checkable category.
type Kind string

const (
	KindQuotaExceeded      Kind = "quota_exceeded"
	KindConfigurationError Kind = "configuration_error"
	KindModelUnavailable   Kind = "model_unavailable"
	KindUnknownProvider    Kind = "unknown_provider_error"
	KindMalformedResponse  Kind = "malformed_response"
	KindInvalidRequest     Kind = "invalid_request"
)

// Error is a user-safe failure. Message is what a caller may show an end
// user; Raw holds the provider diagnostic text and must only ever reach
// server-side logs.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Raw     string
}

func (e *Error) Error() string {
	return e.Message
}

// Retriable reports whether the caller may reasonably retry or fall back.
func (e *Error) Retriable() bool {
	switch e.Kind {
	case KindQuotaExceeded, KindUnknownProvider, KindMalformedResponse:
		return true
	default:
		return false
	}
}

func invalidRequest(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Status: 400, Message: msg}
}

func malformedResponse(action string, raw error) *Error {
	return &Error{
		Kind:    KindMalformedResponse,
		Status:  500,
		Message: fmt.Sprintf("The AI returned an unusable response while %s. Please try again.", action),
		Raw:     raw.Error(),
	}
}

// normalizeProviderError converts an error from the provider layer into a
// stable classification. Typed sentinel errors from the llm package are
// checked first; the remaining classification is text-marker based, in
// priority order, because SDK errors frequently arrive as opaque wrapped
// strings.
func normalizeProviderError(err error, action string) *Error {
	raw := err.Error()
	lower := strings.ToLower(raw)

	out := &Error{
		Kind:    KindUnknownProvider,
		Status:  500,
		Message: fmt.Sprintf("Something went wrong while %s. Please try again in a moment.", action),
		Raw:     raw,
	}

	var rateLimited *llm.ErrRateLimit
	switch {
	case errors.As(err, &rateLimited),
		strings.Contains(raw, "You exceeded your current quota"),
		strings.Contains(raw, `"code":429`),
		strings.Contains(raw, "RESOURCE_EXHAUSTED"),
		strings.Contains(lower, "quota"):
		out.Kind = KindQuotaExceeded
		out.Status = 429
		out.Message = "Our AI test generator has hit its daily limit for this project. Please wait a little while and try again, or come back later today."

	case strings.Contains(raw, "API key not valid"),
		strings.Contains(raw, "API_KEY_INVALID"):
		out.Kind = KindConfigurationError
		out.Message = "AI Service Configuration Error: The API key provided is invalid."

	case strings.Contains(raw, "not found"),
		strings.Contains(raw, "404"):
		out.Kind = KindModelUnavailable
		out.Message = "AI Service Error: The selected model is unavailable."
	}

	return out
}

// AsError extracts a normalized *Error from any error returned by this
// package, or wraps it as an unknown provider error.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Kind:    KindUnknownProvider,
		Status:  500,
		Message: "Something went wrong. Please try again in a moment.",
		Raw:     err.Error(),
	}
}
