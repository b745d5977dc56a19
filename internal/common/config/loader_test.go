package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	// The loader works on the global viper; clear state left by other tests.
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
apis:
  genai:
    base_url: http://localhost:9000
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "college-compass", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 90000, cfg.Server.WriteTimeout)
	assert.Equal(t, "web/static", cfg.Server.StaticDir)
	assert.Equal(t, "configs/colleges.json", cfg.Catalog.DataPath)
	assert.Equal(t, "genai", cfg.Insights.Provider)
	assert.Equal(t, 60000, cfg.Insights.Timeout)
	assert.Equal(t, 1024, cfg.Insights.MaxTokens)
	assert.Equal(t, 0.7, cfg.Insights.Temperature)
	assert.Equal(t, "gemini-2.0-flash", cfg.APIs.Gemini.Model)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFileExplicitValues(t *testing.T) {
	path := writeConfigFile(t, `
server:
  address: ":9090"
  write_timeout: 120000
catalog:
  data_path: /data/colleges.json
insights:
  provider: genai
  timeout: 30000
  max_tokens: 512
  temperature: 0.2
apis:
  genai:
    base_url: http://narrative.internal
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 120000, cfg.Server.WriteTimeout)
	assert.Equal(t, "/data/colleges.json", cfg.Catalog.DataPath)
	assert.Equal(t, 30000, cfg.Insights.Timeout)
	assert.Equal(t, 512, cfg.Insights.MaxTokens)
	assert.Equal(t, 0.2, cfg.Insights.Temperature)
	assert.Equal(t, "http://narrative.internal", cfg.APIs.GenAI.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFileExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_NARRATIVE_URL", "http://expanded.example.com")

	path := writeConfigFile(t, `
apis:
  genai:
    base_url: ${TEST_NARRATIVE_URL}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://expanded.example.com", cfg.APIs.GenAI.BaseURL)
}

func TestLoadFromFileEnvOverridesEmptySecrets(t *testing.T) {
	t.Setenv("GENAI_BASE_URL", "http://env.example.com")
	t.Setenv("GENAI_API_KEY", "env-secret")

	path := writeConfigFile(t, `
insights:
  provider: genai
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.APIs.GenAI.BaseURL)
	assert.Equal(t, "env-secret", cfg.APIs.GenAI.APIKey)
}

func TestLoadFromFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "genai provider without base url",
			content: `
insights:
  provider: genai
`,
		},
		{
			name: "gemini provider without api key",
			content: `
insights:
  provider: gemini
`,
		},
		{
			name: "unknown provider",
			content: `
insights:
  provider: openai
apis:
  genai:
    base_url: http://localhost:9000
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Keep plain env overrides from masking the missing values.
			t.Setenv("GENAI_BASE_URL", "")
			t.Setenv("GENAI_API_KEY", "")
			t.Setenv("GEMINI_API_KEY", "")

			path := writeConfigFile(t, tt.content)
			_, err := LoadFromFile(path)
			assert.Error(t, err)
		})
	}
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 60*time.Second, GetDuration(60000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
