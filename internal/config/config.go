// Package config loads runtime settings from ~/.swim/config.yaml and SWIM_*
// environment variables. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/llm"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SWIM"
	dirName   = ".swim"
)

// Config holds every setting the binary reads.
type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig points at an external template file. Empty means the
// embedded library.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LLMConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	LogCalls   bool   `mapstructure:"log_calls"`
	Provider   string `mapstructure:"provider"`
	Endpoint   string `mapstructure:"endpoint"`
	Model      string `mapstructure:"model"`
	APIKey     string `mapstructure:"api_key"`
	TimeoutMs  int    `mapstructure:"timeout_ms"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// DefaultDir returns ~/.swim.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Load reads config.yaml from dir when present and layers SWIM_* variables
// on top. An empty dir means DefaultDir.
func Load(dir string) (Config, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return Config{}, err
		}
		dir = d
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// llm.api_key -> SWIM_LLM_API_KEY
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := llm.DefaultConfig()
	v.SetDefault("db.path", filepath.Join(dir, "swim.db"))
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.level", "")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("llm.enabled", defaults.Enabled)
	v.SetDefault("llm.log_calls", defaults.LogCalls)
	v.SetDefault("llm.provider", string(defaults.Provider))
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout_ms", defaults.TimeoutMs)
	v.SetDefault("llm.max_retries", defaults.MaxRetries)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// ToLLM converts the file/env view into the llm package config, keeping
// per-task defaults.
func (c Config) ToLLM() llm.LLMConfig {
	out := llm.DefaultConfig()
	out.Enabled = c.LLM.Enabled
	out.LogCalls = c.LLM.LogCalls
	out.Provider = llm.Provider(strings.ToLower(c.LLM.Provider))
	out.Endpoint = c.LLM.Endpoint
	out.APIKey = c.LLM.APIKey
	if c.LLM.Model != "" {
		out.Model = c.LLM.Model
	} else if out.Provider == llm.ProviderOpenAI {
		out.Model = ""
	}
	if out.Endpoint == "" && (out.Provider == llm.ProviderOllama || out.Provider == "") {
		out.Endpoint = llm.DefaultOllamaEndpoint
	}
	if c.LLM.TimeoutMs > 0 {
		out.TimeoutMs = c.LLM.TimeoutMs
	}
	if c.LLM.MaxRetries >= 0 {
		out.MaxRetries = c.LLM.MaxRetries
	}
	return out
}

// Logger returns a text logger at the configured level, or a discarding
// logger when no level is set.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	if c.Log.Level == "" || w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
