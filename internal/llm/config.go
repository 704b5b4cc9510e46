package llm

import (
	"fmt"
	"os"
	"time"
)

// Backend names accepted in Config.Provider.
const (
	Anthropic  = "anthropic"
	OpenAI     = "openai"
	Gemini     = "gemini"
	OpenRouter = "openrouter"
	Mock       = "mock"
)

// Endpoint is the connection settings for one backend.
type Endpoint struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Config selects and configures a backend.
type Config struct {
	Provider string

	Anthropic  Endpoint
	OpenAI     Endpoint
	Gemini     Endpoint
	OpenRouter Endpoint

	Retry RetryPolicy

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// DefaultConfig returns the built-in defaults with no API keys.
func DefaultConfig() Config {
	return Config{
		Provider:   Anthropic,
		Anthropic:  Endpoint{Model: "claude-haiku"},
		OpenAI:     Endpoint{Model: "gpt-4o-mini"},
		Gemini:     Endpoint{Model: "gemini-flash"},
		OpenRouter: Endpoint{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Retry:      DefaultRetryPolicy(),
		Timeout:    60 * time.Second,
	}
}

// Endpoint returns the settings of the named backend.
func (c *Config) Endpoint(name string) (*Endpoint, bool) {
	switch name {
	case Anthropic:
		return &c.Anthropic, true
	case OpenAI:
		return &c.OpenAI, true
	case Gemini:
		return &c.Gemini, true
	case OpenRouter:
		return &c.OpenRouter, true
	}
	return nil, false
}

// envPrefix returns the variable prefix of a backend, e.g. QUIZCARD_OPENAI.
func envPrefix(name string) string {
	switch name {
	case Anthropic:
		return "QUIZCARD_ANTHROPIC"
	case OpenAI:
		return "QUIZCARD_OPENAI"
	case Gemini:
		return "QUIZCARD_GEMINI"
	case OpenRouter:
		return "QUIZCARD_OPENROUTER"
	}
	return ""
}

var backends = []string{Anthropic, OpenAI, Gemini, OpenRouter}

// ConfigFromEnv reads QUIZCARD_LLM_PROVIDER and the per-backend
// QUIZCARD_<BACKEND>_API_KEY, _MODEL and _BASE_URL variables. When no
// provider is named, the first backend with a QUIZCARD key wins, then the
// first with a vendor key such as OPENAI_API_KEY.
func ConfigFromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := DefaultConfig()

	for _, name := range backends {
		ep, _ := cfg.Endpoint(name)
		prefix := envPrefix(name)
		if v := getenv(prefix + "_API_KEY"); v != "" {
			ep.APIKey = v
		}
		if v := getenv(prefix + "_MODEL"); v != "" {
			ep.Model = v
		}
		if v := getenv(prefix + "_BASE_URL"); v != "" {
			ep.BaseURL = v
		}
	}

	if p := getenv("QUIZCARD_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		return cfg
	}

	for _, name := range backends {
		if ep, _ := cfg.Endpoint(name); ep.APIKey != "" {
			cfg.Provider = name
			return cfg
		}
	}

	vendor := map[string]string{
		Gemini:     "GEMINI_API_KEY",
		OpenAI:     "OPENAI_API_KEY",
		Anthropic:  "ANTHROPIC_API_KEY",
		OpenRouter: "OPENROUTER_API_KEY",
	}
	for _, name := range []string{Gemini, OpenAI, Anthropic, OpenRouter} {
		if k := getenv(vendor[name]); k != "" {
			ep, _ := cfg.Endpoint(name)
			ep.APIKey = k
			cfg.Provider = name
			return cfg
		}
	}
	return cfg
}

// Validate checks that the selected backend is known and has a key.
func (c Config) Validate() error {
	if c.Provider == Mock {
		return nil
	}
	ep, ok := c.Endpoint(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if ep.APIKey == "" {
		return fmt.Errorf("%s_API_KEY is required for the %s provider", envPrefix(c.Provider), c.Provider)
	}
	return nil
}
