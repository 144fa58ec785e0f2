package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndSummarize(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "generate_questions", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "generate_questions", InputTokens: 120, OutputTokens: 380, LatencyMs: 1100, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "analyze_results", InputTokens: 200, OutputTokens: 150, LatencyMs: 700, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	sum, err := repo.Summary(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 3, sum.TotalRequests)
	assert.Equal(t, 1, sum.FailedCount)
	assert.Equal(t, 420, sum.InputTokens)
	assert.Equal(t, 930, sum.OutputTokens)
	assert.InDelta(t, 900, sum.AvgLatencyMs, 0.5)

	require.Len(t, sum.ByModel, 1)
	assert.Equal(t, "gemini-2.5-flash", sum.ByModel[0].Model)
	assert.Equal(t, 3, sum.ByModel[0].Requests)

	require.Len(t, sum.ByPurpose, 2)
	assert.Equal(t, "generate_questions", sum.ByPurpose[0].Purpose)
	assert.Equal(t, 2, sum.ByPurpose[0].Requests)
	assert.Equal(t, 0, sum.ByPurpose[0].Failed)
}

func TestSummaryWindowExcludesOldEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-model", Purpose: "chat", Success: true,
	}))

	sum, err := repo.Summary(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, sum.TotalRequests)
	assert.Empty(t, sum.ByModel)
}
