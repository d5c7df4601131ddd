// Package config loads intervue settings from an optional YAML file,
// INTERVUE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/profile"
)

const (
	// Name is the application name and default config file base name.
	Name = "intervue"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "INTERVUE"
)

// Config is the full application configuration.
type Config struct {
	LLM          LLMConfig          `mapstructure:"llm"`
	DB           string             `mapstructure:"db"`
	Debug        bool               `mapstructure:"debug"`
	JSON         bool               `mapstructure:"json"`
	Profile      profile.JobProfile `mapstructure:"profile"`
	MaxQuestions int                `mapstructure:"max-questions"`
}

// LLMConfig selects and tunes the generation provider.
type LLMConfig struct {
	// Provider is anthropic, openai, gemini, openrouter or mock. Empty
	// means auto-detect from the standard API key variables.
	Provider   string        `mapstructure:"provider"`
	Model      string        `mapstructure:"model"`
	APIKey     string        `mapstructure:"api-key"`
	BaseURL    string        `mapstructure:"base-url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max-retries"`
}

// defaults registers every key so that environment variables are seen by
// Unmarshal.
var defaults = map[string]any{
	"llm.provider":           "",
	"llm.model":              "",
	"llm.api-key":            "",
	"llm.base-url":           "",
	"llm.timeout":            "30s",
	"llm.max-retries":        1,
	"db":                     "",
	"debug":                  false,
	"json":                   false,
	"max-questions":          0,
	"profile.title":          "",
	"profile.level":          "",
	"profile.type":           "",
	"profile.duration":       "",
	"profile.description":    "",
	"profile.candidate-name": "",
}

// Setup prepares v for Load: defaults, env prefix and key mapping.
// llm.api-key is read from INTERVUE_LLM_API_KEY.
func Setup(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file, if any, and decodes v into a Config. An
// explicit file must exist; the default intervue.yaml in the working
// directory is optional.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// ProviderConfig resolves the llm.Config for c. Without an explicit
// provider the first standard API key found wins; with none found the
// mock provider is used and ok is false.
func (c LLMConfig) ProviderConfig() (cfg llm.Config, ok bool, err error) {
	if c.Provider == "" {
		var found bool
		cfg, found = llm.DiscoverConfig()
		if !found {
			cfg = llm.DefaultConfig()
			cfg.Provider = "mock"
		}
		c.apply(&cfg)
		return cfg, found, nil
	}

	cfg = llm.DefaultConfig()
	cfg.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if ep := cfg.Endpoint(cfg.Provider); ep != nil {
		ep.APIKey = c.APIKey
		if ep.APIKey == "" {
			ep.APIKey = os.Getenv(llm.KeyEnv(cfg.Provider))
		}
	}
	c.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return llm.Config{}, false, err
	}
	return cfg, cfg.Provider != "mock", nil
}

// apply copies model, base URL, timeout and retry settings onto cfg.
func (c LLMConfig) apply(cfg *llm.Config) {
	if ep := cfg.Endpoint(cfg.Provider); ep != nil {
		if c.Model != "" {
			ep.Model = c.Model
		}
		if c.BaseURL != "" {
			ep.BaseURL = c.BaseURL
		}
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	if c.MaxRetries > 0 {
		cfg.Retry.MaxAttempts = c.MaxRetries
	}
}
