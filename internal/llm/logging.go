package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/quizcard/internal/store"
)

// RequestLogger persists one record per model request.
type RequestLogger interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

var _ RequestLogger = store.EventRepo(nil)

type logging struct {
	inner    Provider
	provider string
	log      RequestLogger
	warn     func(error)
	now      func() time.Time
}

// WithLogging records the outcome of every request made through p. A
// failure to log is reported through warn and never fails the request. A
// nil warn prints to stderr.
func WithLogging(p Provider, provider string, log RequestLogger, warn func(error)) Provider {
	if warn == nil {
		warn = func(err error) { fmt.Fprintf(os.Stderr, "warning: %v\n", err) }
	}
	return &logging{inner: p, provider: provider, log: log, warn: warn, now: time.Now}
}

func (l *logging) Generate(ctx context.Context, req Request) (*Response, error) {
	start := l.now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: l.now().Sub(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// The request context may already be done; the log write must not be.
	if logErr := l.log.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		l.warn(fmt.Errorf("log llm request: %w", logErr))
	}
	return resp, err
}

func (l *logging) ModelID() string {
	return l.inner.ModelID()
}
