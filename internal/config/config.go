package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LLMConfig holds settings for the language-model extraction collaborator.
type LLMConfig struct {
	Provider     string  `mapstructure:"provider"`
	APIKey       string  `mapstructure:"api_key"`
	Organization string  `mapstructure:"organization"`
	Model        string  `mapstructure:"model"`
	Temperature  float64 `mapstructure:"temperature"`
	TimeoutSecs  int     `mapstructure:"timeout_secs"`
	MaxRetries   int     `mapstructure:"max_retries"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from defaults and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)
	v.SetDefault("server.environment", "development")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.timeout_secs", 60)
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cors.allowed_origins", "")

	envBindings := map[string]string{
		"server.port":          "VOCALIS_SERVER_PORT",
		"server.environment":   "VOCALIS_ENVIRONMENT",
		"llm.provider":         "VOCALIS_LLM_PROVIDER",
		"llm.api_key":          "VOCALIS_LLM_API_KEY",
		"llm.organization":     "VOCALIS_LLM_ORGANIZATION",
		"llm.model":            "VOCALIS_LLM_MODEL",
		"llm.temperature":      "VOCALIS_LLM_TEMPERATURE",
		"llm.timeout_secs":     "VOCALIS_LLM_TIMEOUT_SECS",
		"llm.max_retries":      "VOCALIS_LLM_MAX_RETRIES",
		"log.level":            "VOCALIS_LOG_LEVEL",
		"cors.allowed_origins": "VOCALIS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if VOCALIS_SERVER_PORT is not set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VOCALIS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.LLM = LLMConfig{
		Provider:     v.GetString("llm.provider"),
		APIKey:       v.GetString("llm.api_key"),
		Organization: v.GetString("llm.organization"),
		Model:        v.GetString("llm.model"),
		Temperature:  v.GetFloat64("llm.temperature"),
		TimeoutSecs:  v.GetInt("llm.timeout_secs"),
		MaxRetries:   v.GetInt("llm.max_retries"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
