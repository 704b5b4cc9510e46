package llm

import (
	"context"
	"fmt"
	"time"
)

// Options configures New.
type Options struct {
	// Log receives one record per request. Nil disables request logging.
	Log RequestLogger

	// Warn reports failures to log. Defaults to stderr.
	Warn func(error)
}

// New builds the backend selected by cfg wrapped with retries, logging and
// the configured timeout. The mock backend is returned bare.
func New(ctx context.Context, cfg Config, opts Options) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case Mock:
		return NewMockProvider(), nil
	case Anthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case OpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case OpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case Gemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	if opts.Log != nil {
		base = WithLogging(base, cfg.Provider, opts.Log, opts.Warn)
	}
	return WithTimeout(WithRetry(base, cfg.Retry), cfg.Timeout), nil
}

type timeout struct {
	Provider
	d time.Duration
}

// WithTimeout bounds every Generate call of p by d. Zero disables it.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeout{Provider: p, d: d}
}

func (t *timeout) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.Provider.Generate(ctx, req)
}
