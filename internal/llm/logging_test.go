package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyanshgupta04/lern-deployment/internal/store"
)

// memEventRepo collects events in memory for assertions.
type memEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (m *memEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, data)
	return nil
}

func (m *memEventRepo) Summary(context.Context, time.Time) (*store.UsageSummary, error) {
	return &store.UsageSummary{}, nil
}

func TestLoggingProviderRecordsGenerate(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`"ok"`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	})
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), PurposeGenerateQuestions)
	_, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "generate_questions", e.Purpose)
	assert.True(t, e.Success)
	assert.Equal(t, 10, e.InputTokens)
	assert.Equal(t, 20, e.OutputTokens)
	assert.Contains(t, e.RequestBody, "hi")
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, "mock", repo)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Contains(t, repo.events[0].ErrorMessage, "boom")
	assert.Equal(t, "unknown", repo.events[0].Purpose)
}

func TestLoggingProviderStreamRecordsOneEvent(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider()
	mock.AddChunks("ab", "cde")
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), PurposeChat)
	for _, err := range p.Stream(ctx, Request{}) {
		require.NoError(t, err)
	}

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, "chat", e.Purpose)
	assert.True(t, e.Success)
	assert.Contains(t, e.ResponseBody, "streamed 5 chars")
}

func TestLoggingProviderNeverFailsTheRequest(t *testing.T) {
	repo := &memEventRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)})
	p := WithLogging(mock, "mock", repo)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"ok"`), resp.Content)
}
