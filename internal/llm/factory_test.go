package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"

	_, err := NewProvider(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestNewProviderWrapsWithLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	cfg.Gemini.APIKey = "test-key"

	p, err := NewProvider(context.Background(), cfg, &memEventRepo{})
	require.NoError(t, err)
	_, ok := p.(*LoggingProvider)
	assert.True(t, ok)
}

func TestPricingLookup(t *testing.T) {
	c := LookupCost("gemini-2.0-flash")
	require.NotNil(t, c)

	// 1M in at $0.1 plus 1M out at $0.4.
	assert.InDelta(t, 0.5, c.Cost(1_000_000, 1_000_000), 1e-9)

	assert.Nil(t, LookupCost("no-such-model"))
}
