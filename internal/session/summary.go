package session

import (
	"context"

	"github.com/abhisek/quizcard/internal/catalog"
)

// Completed is emitted once when the last question is advanced past.
type Completed struct {
	Quiz           catalog.Quiz
	Score          int
	TotalQuestions int
}

// CompletionHandler consumes a finished session. Handlers run in
// registration order and a failing handler does not stop the rest.
type CompletionHandler interface {
	SessionCompleted(ctx context.Context, ev Completed) error
}

// CompletionFunc adapts a function to CompletionHandler.
type CompletionFunc func(ctx context.Context, ev Completed) error

func (f CompletionFunc) SessionCompleted(ctx context.Context, ev Completed) error {
	return f(ctx, ev)
}
