package generate

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
	"github.com/Divyanshgupta04/lern-deployment/internal/llm"
)

// Service is the AI gateway. It turns exam-domain requests into provider
// calls, repairs what it can in the responses, and classifies what it
// cannot. Every provider call is a single attempt; falling back is the
// caller's decision.
type Service struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider llm.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, logger: logger}
}

// GenerateQuestions asks the model for numQuestions questions of the given
// test type. Every returned Question is fully repaired: plain string fields,
// a valid correct-answer index, and a fresh ID when the model omitted one.
func (s *Service) GenerateQuestions(ctx context.Context, testType string, numQuestions int, opts PromptOptions) ([]exam.Question, error) {
	if numQuestions < 1 {
		return nil, invalidRequest("numQuestions must be at least 1")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeGenerateQuestions)

	req := llm.Request{
		System:   questionSystemPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: BuildQuestionPrompt(testType, numQuestions, opts)}},
		Schema:   questionListSchema(),
	}

	content, err := s.generate(ctx, req, "generating test questions")
	if err != nil {
		return nil, err
	}

	var rawQuestions []map[string]any
	if perr := parseJSON(content, &rawQuestions); perr != nil {
		s.logger.Error("unparseable question response", "error", perr, "testType", testType)
		return nil, malformedResponse("generating test questions", perr)
	}
	if len(rawQuestions) == 0 {
		return nil, malformedResponse("generating test questions", errors.New("empty question list"))
	}

	questions := make([]exam.Question, 0, len(rawQuestions))
	for _, rq := range rawQuestions {
		questions = append(questions, repairQuestion(rq))
	}
	return questions, nil
}

// repairQuestion coerces one decoded question object into a valid Question.
// Shape defects are fixed locally, never escalated.
func repairQuestion(rq map[string]any) exam.Question {
	q := exam.Question{
		ID:           sanitizeString(rq["id"]),
		QuestionText: sanitizeString(rq["questionText"]),
		Options:      sanitizeStrings(rq["options"]),
		Explanation:  sanitizeString(rq["explanation"]),
		Topic:        sanitizeString(rq["topic"]),
		Passage:      sanitizeString(rq["passage"]),
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if len(q.Options) < 2 {
		q.Options = []string{"A", "B", "C", "D"}
	}
	if idx, ok := rq["correctAnswerIndex"].(float64); ok && idx == float64(int(idx)) && int(idx) >= 0 && int(idx) < len(q.Options) {
		q.CorrectAnswerIndex = int(idx)
	}
	if q.Explanation == "" {
		q.Explanation = "No explanation provided."
	}
	if q.Topic == "" {
		q.Topic = "General"
	}
	if d, ok := rq["difficulty"].(string); ok {
		q.Difficulty = exam.Difficulty(d)
	}
	return q
}

// AnalyzeResults asks the model for a per-question and per-topic breakdown
// of a completed test.
func (s *Service) AnalyzeResults(ctx context.Context, result *exam.TestResult) (*exam.Analysis, error) {
	if result == nil || len(result.Questions) == 0 || len(result.Answers) == 0 {
		return nil, invalidRequest("questions and answers are required for analysis")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeAnalyzeResults)

	prompt, err := BuildAnalysisPrompt(result)
	if err != nil {
		return nil, invalidRequest(err.Error())
	}

	req := llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:   analysisSchema(),
	}

	content, gerr := s.generate(ctx, req, "analyzing your test results")
	if gerr != nil {
		return nil, gerr
	}

	var raw struct {
		Summary          any              `json:"summary"`
		QuestionAnalysis []map[string]any `json:"questionAnalysis"`
		TopicPerformance []struct {
			Topic   any      `json:"topic"`
			Correct *float64 `json:"correct"`
			Total   *float64 `json:"total"`
		} `json:"topicPerformance"`
	}
	if perr := parseJSON(content, &raw); perr != nil {
		s.logger.Error("unparseable analysis response", "error", perr)
		return nil, malformedResponse("analyzing your test results", perr)
	}

	analysis := &exam.Analysis{
		Summary:          sanitizeString(raw.Summary),
		QuestionAnalysis: make([]exam.QuestionAnalysis, 0, len(raw.QuestionAnalysis)),
		TopicPerformance: make([]exam.TopicPerformance, 0, len(raw.TopicPerformance)),
	}
	for _, qa := range raw.QuestionAnalysis {
		isCorrect, _ := qa["isCorrect"].(bool)
		analysis.QuestionAnalysis = append(analysis.QuestionAnalysis, exam.QuestionAnalysis{
			QuestionText:  sanitizeString(qa["questionText"]),
			UserAnswer:    sanitizeString(qa["userAnswer"]),
			CorrectAnswer: sanitizeString(qa["correctAnswer"]),
			IsCorrect:     isCorrect,
			Explanation:   sanitizeString(qa["explanation"]),
			Topic:         sanitizeString(qa["topic"]),
			QuestionType:  sanitizeString(qa["questionType"]),
		})
	}
	for _, tp := range raw.TopicPerformance {
		perf := exam.TopicPerformance{Topic: sanitizeString(tp.Topic), Total: 1}
		if tp.Correct != nil {
			perf.Correct = int(*tp.Correct)
		}
		if tp.Total != nil {
			perf.Total = int(*tp.Total)
		}
		analysis.TopicPerformance = append(analysis.TopicPerformance, perf)
	}
	return analysis, nil
}

// StreamChat yields the tutor's reply incrementally. Any terminal error in
// the sequence is already normalized. Stopping iteration releases the
// underlying provider stream.
func (s *Service) StreamChat(ctx context.Context, history []exam.ChatMessage, userContext string) (iter.Seq2[string, error], error) {
	if len(history) == 0 {
		return nil, invalidRequest("chat history must not be empty")
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	messages := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	req := llm.Request{
		System:   BuildChatSystemPrompt(userContext),
		Messages: messages,
	}

	inner := s.provider.Stream(ctx, req)
	return func(yield func(string, error) bool) {
		for chunk, err := range inner {
			if err != nil {
				nerr := normalizeProviderError(err, "chatting with the tutor")
				s.logger.Error("chat stream failed", "kind", nerr.Kind, "raw", nerr.Raw)
				yield("", nerr)
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}, nil
}

// AdminInsights asks the model for a short free-text summary of platform
// usage for administrators.
func (s *Service) AdminInsights(ctx context.Context, stats exam.AdminStats) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAdminInsights)

	prompt, err := BuildAdminInsightsPrompt(stats)
	if err != nil {
		return "", invalidRequest(err.Error())
	}

	req := llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
	}

	content, gerr := s.generate(ctx, req, "generating admin insights")
	if gerr != nil {
		return "", gerr
	}
	if strings.TrimSpace(content) == "" {
		return "", malformedResponse("generating admin insights", errors.New("empty response"))
	}
	return content, nil
}

// generate runs one provider call and returns the response text. Schema
// validation failures are not fatal here: the raw content is handed back so
// the parse-and-repair pass gets its chance, and only that pass decides
// whether the response is truly unusable.
func (s *Service) generate(ctx context.Context, req llm.Request, action string) (string, error) {
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) && len(invalid.Content) > 0 {
			s.logger.Warn("response failed schema validation, attempting repair",
				"action", action, "error", invalid.Err)
			return string(invalid.Content), nil
		}
		nerr := normalizeProviderError(err, action)
		s.logger.Error("provider call failed",
			"action", action, "kind", nerr.Kind, "status", nerr.Status, "raw", nerr.Raw)
		return "", nerr
	}
	return contentText(resp.Content), nil
}

// contentText unwraps a raw JSON string response to its text, leaving
// structured JSON untouched.
func contentText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}
	return string(content)
}
