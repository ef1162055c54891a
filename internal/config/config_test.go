package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.InDelta(t, 0.1, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 60, cfg.LLM.TimeoutSecs)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("VOCALIS_SERVER_PORT", ":9090")
	t.Setenv("VOCALIS_LLM_MODEL", "gpt-4o")
	t.Setenv("VOCALIS_LLM_API_KEY", "sk-test")
	t.Setenv("VOCALIS_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Port)
}
