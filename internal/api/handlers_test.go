package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
	"github.com/Divyanshgupta04/lern-deployment/internal/generate"
	"github.com/Divyanshgupta04/lern-deployment/internal/llm"
	"github.com/Divyanshgupta04/lern-deployment/internal/store"
)

func newTestServer(mock *llm.MockProvider, events store.EventRepo) *Server {
	return NewServer(generate.NewService(mock, nil), events, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	content := `[{"id":"q1","questionText":"Q","options":["A","B"],"correctAnswerIndex":0,"explanation":"E","topic":"T"}]`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	srv := newTestServer(mock, nil)

	rec := postJSON(t, srv.Routes(), "/api/ai/questions", questionsRequest{
		TestType: "SAT Math", NumQuestions: 1,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp questionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ai", resp.Source)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "q1", resp.Questions[0].ID)
}

func TestGenerateQuestionsFallsBackOnProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("RESOURCE_EXHAUSTED")})
	srv := newTestServer(mock, nil)

	rec := postJSON(t, srv.Routes(), "/api/ai/questions", questionsRequest{
		TestType: "SAT Math", NumQuestions: 25,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp questionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fallback", resp.Source)
	assert.Len(t, resp.Questions, 25)
}

func TestGenerateQuestionsConfigurationErrorIsNotMasked(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API_KEY_INVALID")})
	srv := newTestServer(mock, nil)

	rec := postJSON(t, srv.Routes(), "/api/ai/questions", questionsRequest{
		TestType: "SAT Math", NumQuestions: 5,
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, generate.KindConfigurationError, body.Kind)
	assert.NotContains(t, body.Error, "API_KEY_INVALID")
}

func TestGenerateQuestionsBadBody(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/ai/questions", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysisEndpointQuotaMapsTo429(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("You exceeded your current quota")})
	srv := newTestServer(mock, nil)

	rec := postJSON(t, srv.Routes(), "/api/ai/analysis", exam.TestResult{
		Questions: []exam.Question{{ID: "q1", QuestionText: "Q", Options: []string{"A", "B"}}},
		Answers:   []exam.Answer{{QuestionID: "q1", AnswerIndex: 0}},
	})

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, generate.KindQuotaExceeded, body.Kind)
}

func TestPlanEndpoint(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)

	rec := postJSON(t, srv.Routes(), "/api/ai/plan", planRequest{
		Goal: exam.Goal{Exam: exam.FamilySAT},
		Result: exam.TestResult{
			TestType: "SAT Math",
			TopicPerformance: []exam.TopicPerformance{
				{Topic: "Algebra", Correct: 1, Total: 10},
			},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var p exam.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Len(t, p.Weeks, 8)
}

func TestChatEndpointStreamsText(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddChunks("Hello", ", ", "student!")
	srv := newTestServer(mock, nil)

	rec := postJSON(t, srv.Routes(), "/api/ai/chat", chatRequest{
		History: []exam.ChatMessage{{Role: "user", Content: "hi"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Hello, student!", rec.Body.String())
}

func TestChatEndpointErrorBeforeFirstChunk(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.SetStreamErr(errors.New("RESOURCE_EXHAUSTED"))
	srv := newTestServer(mock, nil)

	rec := postJSON(t, srv.Routes(), "/api/ai/chat", chatRequest{
		History: []exam.ChatMessage{{Role: "user", Content: "hi"}},
	})

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAdminInsightsEndpoint(t *testing.T) {
	reply, _ := json.Marshal("Engagement is up.")
	mock := llm.NewMockProvider(llm.MockResponse{Content: reply})
	srv := newTestServer(mock, nil)

	rec := postJSON(t, srv.Routes(), "/api/admin/insights", exam.AdminStats{TotalUsers: 10})

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Engagement is up.", body["insights"])
}

func TestUsageEndpoint(t *testing.T) {
	s, err := store.Open(t.TempDir() + "/events.db")
	require.NoError(t, err)
	defer s.Close()

	repo := s.EventRepo()
	require.NoError(t, repo.AppendLLMRequest(context.Background(), store.LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "generate_questions",
		InputTokens: 1000, OutputTokens: 2000, Success: true,
	}))

	srv := newTestServer(llm.NewMockProvider(), repo)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/usage", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp usageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalRequests)
	assert.Contains(t, resp.EstimatedCost, "gemini-2.5-flash")
	assert.InDelta(t, 0.0053, resp.EstimatedCost["gemini-2.5-flash"], 1e-6)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), resp.Since, time.Minute)
}

func TestUsageEndpointWithoutStore(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/usage", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider(), nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
