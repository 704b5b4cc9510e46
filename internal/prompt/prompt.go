// Package prompt defines confirmation obligations raised by the quiz engine.
//
// The engine never asks the user anything itself: it returns a Request and
// waits for the caller to hand back the chosen label.
package prompt

import "context"

// ID identifies the kind of confirmation being asked for.
type ID string

const (
	Skip   ID = "skip"
	Stop   ID = "stop"
	Remove ID = "remove"
)

// Common option labels.
const (
	Yes = "Yes"
	No  = "No"
)

// Option is one answer the user can pick.
type Option struct {
	Label       string
	Destructive bool
	// Cancel marks the option chosen when the prompt is dismissed.
	Cancel bool
}

// Request is a confirmation obligation.
type Request struct {
	ID      ID
	Title   string
	Message string
	Options []Option
}

// Confirmer is the request/response boundary for prompts. Implementations
// block until the user answers or ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, req Request) (string, error)
}

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(ctx context.Context, req Request) (string, error)

func (f ConfirmerFunc) Confirm(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// SkipQuestion is raised when confirming without a selection or when a
// drag crosses the skip threshold.
func SkipQuestion() Request {
	return Request{
		ID:      Skip,
		Title:   "Skip",
		Message: "Do you really want to skip this question?",
		Options: []Option{
			{Label: Yes},
			{Label: No, Cancel: true},
		},
	}
}

// StopQuiz is raised when the user asks to leave a running quiz.
func StopQuiz() Request {
	return Request{
		ID:      Stop,
		Title:   "Stop",
		Message: "Do you want to stop now?",
		Options: []Option{
			{Label: No, Cancel: true},
			{Label: Yes, Destructive: true},
		},
	}
}

// RemoveRecord is raised before deleting a history entry.
func RemoveRecord() Request {
	return Request{
		ID:      Remove,
		Title:   "Remove",
		Message: "Do you want to remove this record?",
		Options: []Option{
			{Label: Yes, Destructive: true},
			{Label: No, Cancel: true},
		},
	}
}

// Accepted reports whether label is the affirmative answer.
func Accepted(label string) bool {
	return label == Yes
}

// CancelLabel returns the label used when the prompt is dismissed.
func (r Request) CancelLabel() string {
	for _, o := range r.Options {
		if o.Cancel {
			return o.Label
		}
	}
	return No
}

// Has reports whether label is one of the request's options.
func (r Request) Has(label string) bool {
	for _, o := range r.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}
