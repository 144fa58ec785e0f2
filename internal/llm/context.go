package llm

import "context"

// Purpose labels for the operations that reach a provider. Each request
// context carries one so the event log can attribute tokens and cost per
// operation in the usage summary.
const (
	PurposeGenerateQuestions = "generate_questions"
	PurposeAnalyzeResults    = "analyze_results"
	PurposeChat              = "chat"
	PurposeAdminInsights     = "admin_insights"
	PurposeUnknown           = "unknown"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with the operation issuing the request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag back out. Requests that never passed
// through WithPurpose are attributed to PurposeUnknown rather than dropped
// from the usage summary.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return PurposeUnknown
}
