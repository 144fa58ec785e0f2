package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData captures one request to an LLM provider.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// UsageSummary aggregates recorded LLM request events.
type UsageSummary struct {
	TotalRequests int
	FailedCount   int
	InputTokens   int
	OutputTokens  int
	AvgLatencyMs  float64
	ByModel       []ModelUsage
	ByPurpose     []PurposeUsage
}

// ModelUsage is the per-model slice of a UsageSummary.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// PurposeUsage is the per-purpose slice of a UsageSummary.
type PurposeUsage struct {
	Purpose  string
	Requests int
	Failed   int
}

// EventRepo records and summarizes LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	Summary(ctx context.Context, since time.Time) (*UsageSummary, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_request_events
			(provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens,
		data.LatencyMs, data.Success, data.ErrorMessage,
		data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) Summary(ctx context.Context, since time.Time) (*UsageSummary, error) {
	s := &UsageSummary{}

	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(AVG(latency_ms), 0)
		FROM llm_request_events
		WHERE timestamp >= ?`, since.UTC())
	if err := row.Scan(&s.TotalRequests, &s.FailedCount, &s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
		return nil, fmt.Errorf("summarize llm request events: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events
		WHERE timestamp >= ?
		GROUP BY model
		ORDER BY COUNT(*) DESC`, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("summarize by model: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m ModelUsage
		if err := rows.Scan(&m.Model, &m.Requests, &m.InputTokens, &m.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model usage: %w", err)
		}
		s.ByModel = append(s.ByModel, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate model usage: %w", err)
	}

	prows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*),
		       COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0)
		FROM llm_request_events
		WHERE timestamp >= ?
		GROUP BY purpose
		ORDER BY COUNT(*) DESC`, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("summarize by purpose: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var p PurposeUsage
		if err := prows.Scan(&p.Purpose, &p.Requests, &p.Failed); err != nil {
			return nil, fmt.Errorf("scan purpose usage: %w", err)
		}
		s.ByPurpose = append(s.ByPurpose, p)
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purpose usage: %w", err)
	}

	return s, nil
}
