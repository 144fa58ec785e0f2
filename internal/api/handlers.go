package api

import (
	"net/http"
	"time"

	"github.com/Divyanshgupta04/lern-deployment/internal/exam"
	"github.com/Divyanshgupta04/lern-deployment/internal/fallback"
	"github.com/Divyanshgupta04/lern-deployment/internal/generate"
	"github.com/Divyanshgupta04/lern-deployment/internal/llm"
	"github.com/Divyanshgupta04/lern-deployment/internal/plan"
)

type questionsRequest struct {
	TestType     string          `json:"testType"`
	NumQuestions int             `json:"numQuestions"`
	Topic        string          `json:"topic,omitempty"`
	Difficulty   exam.Difficulty `json:"difficulty,omitempty"`
	AvoidTopics  []string        `json:"avoidTopics,omitempty"`
}

type questionsResponse struct {
	Questions []exam.Question `json:"questions"`
	Source    string          `json:"source"` // "ai" or "fallback"
}

// handleGenerateQuestions serves AI-generated questions, or prebuilt ones
// when generation fails in a retriable way. Non-retriable failures
// (bad request, misconfiguration) are reported as-is so the operator or
// caller can act on them.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	questions, err := s.svc.GenerateQuestions(r.Context(), req.TestType, req.NumQuestions, generate.PromptOptions{
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		AvoidTopics: req.AvoidTopics,
	})
	if err != nil {
		nerr := generate.AsError(err)
		if nerr.Kind == generate.KindInvalidRequest || nerr.Kind == generate.KindConfigurationError {
			respondError(w, nerr)
			return
		}
		s.logger.Warn("serving fallback questions",
			"testType", req.TestType, "kind", nerr.Kind)
		respondJSON(w, http.StatusOK, questionsResponse{
			Questions: fallback.Questions(req.TestType, req.NumQuestions),
			Source:    "fallback",
		})
		return
	}

	respondJSON(w, http.StatusOK, questionsResponse{Questions: questions, Source: "ai"})
}

func (s *Server) handleAnalyzeResults(w http.ResponseWriter, r *http.Request) {
	var req exam.TestResult
	if !decodeBody(w, r, &req) {
		return
	}

	analysis, err := s.svc.AnalyzeResults(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, analysis)
}

type planRequest struct {
	Goal   exam.Goal       `json:"goal"`
	Result exam.TestResult `json:"result"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p := plan.Generate(req.Goal, &req.Result, time.Now())
	respondJSON(w, http.StatusOK, p)
}

type chatRequest struct {
	History []exam.ChatMessage `json:"history"`
	Context string             `json:"context,omitempty"`
}

// handleChat streams the tutor's reply as plain text chunks, flushing after
// each one. Errors before the first chunk are reported as JSON; once the
// stream has started the connection is simply closed on failure.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	seq, err := s.svc.StreamChat(r.Context(), req.History, req.Context)
	if err != nil {
		respondError(w, err)
		return
	}

	flusher, _ := w.(http.Flusher)
	started := false
	for chunk, serr := range seq {
		if serr != nil {
			if !started {
				respondError(w, serr)
			}
			return
		}
		if !started {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if _, werr := w.Write([]byte(chunk)); werr != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (s *Server) handleAdminInsights(w http.ResponseWriter, r *http.Request) {
	var stats exam.AdminStats
	if !decodeBody(w, r, &stats) {
		return
	}

	insights, err := s.svc.AdminInsights(r.Context(), stats)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"insights": insights})
}

type usageResponse struct {
	Since         time.Time          `json:"since"`
	TotalRequests int                `json:"totalRequests"`
	FailedCount   int                `json:"failedCount"`
	InputTokens   int                `json:"inputTokens"`
	OutputTokens  int                `json:"outputTokens"`
	AvgLatencyMs  float64            `json:"avgLatencyMs"`
	EstimatedCost map[string]float64 `json:"estimatedCostUSD"`
	ByPurpose     []map[string]any   `json:"byPurpose"`
}

// handleUsage summarizes recorded LLM requests over the last 30 days,
// with a per-model cost estimate where pricing is known.
func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		respondJSON(w, http.StatusServiceUnavailable, errorBody{Error: "usage tracking is not enabled"})
		return
	}

	since := time.Now().AddDate(0, 0, -30)
	sum, err := s.events.Summary(r.Context(), since)
	if err != nil {
		s.logger.Error("summarizing usage", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to summarize usage"})
		return
	}

	resp := usageResponse{
		Since:         since,
		TotalRequests: sum.TotalRequests,
		FailedCount:   sum.FailedCount,
		InputTokens:   sum.InputTokens,
		OutputTokens:  sum.OutputTokens,
		AvgLatencyMs:  sum.AvgLatencyMs,
		EstimatedCost: map[string]float64{},
	}
	for _, m := range sum.ByModel {
		if c := llm.LookupCost(m.Model); c != nil {
			resp.EstimatedCost[m.Model] = c.Cost(m.InputTokens, m.OutputTokens)
		}
	}
	for _, p := range sum.ByPurpose {
		resp.ByPurpose = append(resp.ByPurpose, map[string]any{
			"purpose":  p.Purpose,
			"requests": p.Requests,
			"failed":   p.Failed,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}
