package router

import (
	"context"
	"strconv"

	"github.com/abhisek/quizcard/internal/session"
)

// FinishRoute is the route shown when a quiz is completed.
const FinishRoute = "finish"

// Navigator is the fire-and-forget navigation boundary.
type Navigator interface {
	GoTo(route string, params map[string]string)
	GoBack()
}

var _ Navigator = (*Outbox)(nil)

// CompletionRouter sends a finished session to the finish screen.
type CompletionRouter struct {
	nav Navigator
}

var _ session.CompletionHandler = (*CompletionRouter)(nil)

// NewCompletionRouter creates a CompletionRouter navigating through nav.
func NewCompletionRouter(nav Navigator) *CompletionRouter {
	return &CompletionRouter{nav: nav}
}

// SessionCompleted implements session.CompletionHandler.
func (c *CompletionRouter) SessionCompleted(_ context.Context, ev session.Completed) error {
	c.nav.GoTo(FinishRoute, FinishParams(ev.Score, ev.TotalQuestions))
	return nil
}

// FinishParams encodes a final score as route params.
func FinishParams(points, total int) map[string]string {
	return map[string]string{
		"points": strconv.Itoa(points),
		"total":  strconv.Itoa(total),
	}
}

// ParseFinishParams decodes params built by FinishParams.
func ParseFinishParams(params map[string]string) (points, total int, err error) {
	if points, err = strconv.Atoi(params["points"]); err != nil {
		return 0, 0, err
	}
	if total, err = strconv.Atoi(params["total"]); err != nil {
		return 0, 0, err
	}
	return points, total, nil
}
