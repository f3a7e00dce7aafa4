package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_DisabledLocalOllama(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, DefaultOllamaEndpoint, cfg.Endpoint)
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskPolish))
}

func TestTaskTimeout_TaskOverrideWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = map[TaskType]TaskConfig{TaskPolish: {TimeoutMs: 1200}}
	cfg.TimeoutMs = 3000
	assert.Equal(t, 1200, cfg.TaskTimeout(TaskPolish))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = map[TaskType]TaskConfig{TaskPolish: {Temperature: 0.2}}
	cfg.TimeoutMs = 3000
	assert.Equal(t, 3000, cfg.TaskTimeout(TaskPolish))
	assert.Equal(t, 3000, cfg.TaskTimeout("unknown"))
}

func TestNewClient_PicksProvider(t *testing.T) {
	cfg := DefaultConfig()

	c, err := NewClient(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &ollamaClient{}, c)

	cfg.Provider = ProviderOpenAI
	c, err = NewClient(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &openAIClient{}, c)

	cfg.Provider = "carrier-pigeon"
	_, err = NewClient(cfg, nil)
	assert.ErrorContains(t, err, "carrier-pigeon")
}
