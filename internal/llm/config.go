package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	Anthropic  Endpoint
	OpenAI     Endpoint
	Gemini     Endpoint
	OpenRouter Endpoint
	Retry      RetryConfig

	// Timeout is the maximum duration for a single LLM attempt.
	// Default: 30s. Zero disables the bound.
	Timeout time.Duration
}

// Endpoint is the connection setting for one provider. Model accepts a
// friendly alias (see the per-provider model maps) or a raw model ID.
type Endpoint struct {
	APIKey  string
	Model   string
	BaseURL string // ignored by gemini
}

// RetryConfig configures retry behavior for transient failures.
// MaxAttempts of 1 (the default) disables retries: the interview engine
// falls back immediately on the first failure.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// keyEnv lists the standard API key variables in discovery order.
var keyEnv = []struct {
	provider string
	env      string
}{
	{"gemini", "GEMINI_API_KEY"},
	{"openai", "OPENAI_API_KEY"},
	{"anthropic", "ANTHROPIC_API_KEY"},
	{"openrouter", "OPENROUTER_API_KEY"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  Endpoint{Model: "claude-haiku"},
		OpenAI:     Endpoint{Model: "gpt-4o-mini"},
		Gemini:     Endpoint{Model: "gemini-flash"},
		OpenRouter: Endpoint{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// Endpoint returns the settings for the named provider, or nil for mock
// and unknown names.
func (c *Config) Endpoint(provider string) *Endpoint {
	switch provider {
	case "anthropic":
		return &c.Anthropic
	case "openai":
		return &c.OpenAI
	case "gemini":
		return &c.Gemini
	case "openrouter":
		return &c.OpenRouter
	}
	return nil
}

// KeyEnv returns the standard API key variable for provider, or "".
func KeyEnv(provider string) string {
	for _, k := range keyEnv {
		if k.provider == provider {
			return k.env
		}
	}
	return ""
}

// DiscoverConfig probes the standard API key variables in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is set. Returns (Config{}, false) if none is.
func DiscoverConfig() (Config, bool) {
	for _, k := range keyEnv {
		key := os.Getenv(k.env)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = k.provider
		cfg.Endpoint(k.provider).APIKey = key
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	ep := c.Endpoint(c.Provider)
	if ep == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if ep.APIKey == "" {
		return fmt.Errorf("an API key is required for the %s provider (set INTERVUE_LLM_API_KEY or %s)",
			c.Provider, KeyEnv(c.Provider))
	}
	return nil
}
