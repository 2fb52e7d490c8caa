package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.ChatHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.NotEmpty(t, cfg.ChatModel)
	assert.NotEmpty(t, cfg.EmbeddingModel)
	assert.Equal(t, 5000, cfg.MaxOutputTokens)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://localhost:9100"),
		WithChatModel("gpt-4o-mini"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithMaxOutputTokens(1024),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:9100/v1", cfg.ChatHost)
	assert.Equal(t, "http://localhost:9100/v1", cfg.EmbeddingHost)
	assert.Equal(t, "gpt-4o-mini", cfg.ChatModel)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, 1024, cfg.MaxOutputTokens)
}

func TestNewConfig_SeparateHosts(t *testing.T) {
	cfg := NewConfig(
		WithChatHost("http://chat:8080"),
		WithEmbeddingHost("http://embed:8080"),
	)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://chat:8080/v1", cfg.ChatHost)
	assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithHost(tt.host))
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.ChatHost)
			assert.Equal(t, tt.want, cfg.EmbeddingHost)
		})
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing chat host", func(c *Config) { c.ChatHost = "" }},
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing chat model", func(c *Config) { c.ChatModel = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"zero max tokens", func(c *Config) { c.MaxOutputTokens = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
