package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "swim.db"), cfg.DB.Path)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Empty(t, cfg.Catalog.Path)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 8000, cfg.LLM.TimeoutMs)
	assert.Equal(t, 8000, cfg.ToLLM().TaskTimeout(llm.TaskPolish))
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
db:
  path: /tmp/other.db
llm:
  enabled: true
  provider: openai
  model: gpt-4o
  timeout_ms: 3000
server:
  address: 127.0.0.1:9000
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.DB.Path)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 3000, cfg.LLM.TimeoutMs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "llm:\n  enabled: false\n  model: from-file\n")

	t.Setenv("SWIM_LLM_ENABLED", "true")
	t.Setenv("SWIM_LLM_MODEL", "from-env")
	t.Setenv("SWIM_LLM_API_KEY", "sk-test")
	t.Setenv("SWIM_DB_PATH", "/data/swim.db")
	t.Setenv("SWIM_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "from-env", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "/data/swim.db", cfg.DB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvTimeoutReachesPolish(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "llm:\n  timeout_ms: 3000\n")
	t.Setenv("SWIM_LLM_TIMEOUT_MS", "2500")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.LLM.TimeoutMs)
	assert.Equal(t, 2500, cfg.ToLLM().TaskTimeout(llm.TaskPolish))
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "llm: [unclosed")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestToLLM(t *testing.T) {
	t.Run("ollama gets default endpoint", func(t *testing.T) {
		cfg := Config{LLM: LLMConfig{Enabled: true, Provider: "Ollama", MaxRetries: 2}}
		out := cfg.ToLLM()
		assert.Equal(t, llm.ProviderOllama, out.Provider)
		assert.Equal(t, llm.DefaultOllamaEndpoint, out.Endpoint)
		assert.Equal(t, "llama3.2", out.Model)
		assert.Equal(t, 2, out.MaxRetries)
		assert.Equal(t, 8000, out.TaskTimeout(llm.TaskPolish))
	})

	t.Run("openai keeps empty endpoint and model", func(t *testing.T) {
		cfg := Config{LLM: LLMConfig{Provider: "openai", APIKey: "k", TimeoutMs: 2500}}
		out := cfg.ToLLM()
		assert.Equal(t, llm.ProviderOpenAI, out.Provider)
		assert.Empty(t, out.Endpoint)
		assert.Empty(t, out.Model)
		assert.Equal(t, "k", out.APIKey)
		assert.Equal(t, 2500, out.TimeoutMs)
		assert.Equal(t, 2500, out.TaskTimeout(llm.TaskPolish))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	quiet, err := Config{}.Logger(&buf)
	require.NoError(t, err)
	quiet.Info("hidden")
	assert.Empty(t, buf.String())

	loud, err := Config{Log: LogConfig{Level: "warn"}}.Logger(&buf)
	require.NoError(t, err)
	loud.Info("skipped")
	loud.Warn("shown")
	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "shown")

	_, err = Config{Log: LogConfig{Level: "loud"}}.Logger(&buf)
	assert.Error(t, err)
}
