package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LERN_LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "bare-key")
	t.Setenv("LERN_OPENAI_MODEL", "gpt-4.1-mini")

	cfg := ConfigFromEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "bare-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAI.Model)
}

func TestConfigFromEnvPrefixedOverridesBare(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "bare")
	t.Setenv("LERN_GEMINI_API_KEY", "prefixed")

	cfg := ConfigFromEnv()
	assert.Equal(t, "prefixed", cfg.Gemini.APIKey)
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.NotZero(t, cfg.Timeout)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate(), "gemini without a key must fail")

	cfg.Gemini.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "no-such-provider"
	assert.Error(t, cfg.Validate())
}
