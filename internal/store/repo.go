package store

import (
	"context"
	"errors"
	"time"
)

// ErrRecordNotFound is returned when removing a history record that does
// not exist.
var ErrRecordNotFound = errors.New("store: record not found")

// HistoryRecord is one finished quiz attempt.
type HistoryRecord struct {
	ID             string
	Title          string
	Level          int
	Score          int
	TotalQuestions int
	CreatedAt      time.Time
}

// HistoryRepo persists finished attempts. Records are never updated.
type HistoryRepo interface {
	// Add stores a new record.
	Add(ctx context.Context, rec HistoryRecord) error

	// All returns every record, most recent first.
	All(ctx context.Context) ([]HistoryRecord, error)

	// Remove deletes the record with the given id or returns
	// ErrRecordNotFound.
	Remove(ctx context.Context, id string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMRequestCount returns the number of recorded LLM requests.
	LLMRequestCount(ctx context.Context) (int, error)

	// LLMUsage aggregates recorded requests by purpose and model.
	LLMUsage(ctx context.Context) ([]LLMUsage, error)
}

// LLMUsage is the request total of one purpose and model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	Failures     int
}
