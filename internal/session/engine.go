package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/feedback"
	"github.com/abhisek/quizcard/internal/prompt"
)

// Engine drives one quiz attempt at a time. It is not safe for concurrent
// use: in the TUI every call happens on the Bubble Tea update goroutine.
type Engine struct {
	catalog  catalog.Catalog
	gate     *feedback.Gate
	handlers []CompletionHandler

	phase   SessionPhase
	session *Session
	pending *feedback.Handle
	prompt  *prompt.Request
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCompletionHandlers registers consumers of the completion event.
func WithCompletionHandlers(h ...CompletionHandler) EngineOption {
	return func(e *Engine) { e.handlers = append(e.handlers, h...) }
}

// NewEngine creates an engine that resolves quizzes from cat and plays
// answer feedback through gate.
func NewEngine(cat catalog.Catalog, gate *feedback.Gate, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: cat,
		gate:    gate,
		phase:   PhaseLoading,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ConfirmResult is the outcome of Confirm. Exactly one of Prompt and Handle
// is set, or neither when the call was ignored.
type ConfirmResult struct {
	// Prompt is a skip obligation raised when nothing was selected.
	Prompt *prompt.Request

	// Handle is the running feedback animation. Settle once it resolves.
	Handle *feedback.Handle

	// Status is the evaluation, or StatusNeutral if nothing was evaluated.
	Status Status
}

// Ignored reports whether Confirm did nothing.
func (r ConfirmResult) Ignored() bool {
	return r.Prompt == nil && r.Handle == nil
}

// Start resolves quizID and begins a new attempt. A running attempt is
// abandoned first. Quizzes failing catalog validation, such as one without
// questions, are refused.
func (e *Engine) Start(ctx context.Context, quizID string) error {
	if e.session != nil {
		e.Abandon()
	}
	e.phase = PhaseLoading

	if err := ctx.Err(); err != nil {
		return err
	}
	q, err := e.catalog.FindByID(quizID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if err := q.Validate(); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	e.session = newSession(q)
	e.phase = PhaseActive
	return nil
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() SessionPhase {
	return e.phase
}

// Active reports whether a session is running.
func (e *Engine) Active() bool {
	return e.session != nil
}

// Snapshot returns a copy of the running session.
func (e *Engine) Snapshot() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Prompt returns the pending confirmation, or nil.
func (e *Engine) Prompt() *prompt.Request {
	return e.prompt
}

// Pending returns the feedback handle awaiting Settle, or nil.
func (e *Engine) Pending() *feedback.Handle {
	return e.pending
}

// Select picks choice i for the current question. It returns false without
// error while feedback is playing or a prompt is pending.
func (e *Engine) Select(i int) (bool, error) {
	s := e.session
	if s == nil {
		return false, ErrNotActive
	}
	if s.Status != StatusNeutral || e.prompt != nil {
		return false, nil
	}
	if n := len(s.Question().Choices); i < 0 || i >= n {
		return false, &InvalidChoiceError{Index: i, Count: n}
	}
	s.Selected = i
	return true, nil
}

// Confirm submits the current selection. Without a selection it raises the
// skip prompt instead. While feedback is playing it is ignored.
func (e *Engine) Confirm() (ConfirmResult, error) {
	s := e.session
	if s == nil {
		return ConfirmResult{}, ErrNotActive
	}
	if s.Status != StatusNeutral || e.prompt != nil {
		return ConfirmResult{}, nil
	}
	if !s.HasSelection() {
		req := prompt.SkipQuestion()
		e.prompt = &req
		return ConfirmResult{Prompt: &req}, nil
	}

	status, err := Evaluate(s.Question(), s.Selected)
	if err != nil {
		return ConfirmResult{}, err
	}

	var h *feedback.Handle
	if status == StatusCorrect {
		h, err = e.gate.PlayCorrect()
	} else {
		h, err = e.gate.PlayIncorrect()
	}
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("play feedback: %w", err)
	}

	s.Status = status
	if status == StatusCorrect {
		s.Score++
	}
	e.pending = h
	return ConfirmResult{Handle: h, Status: status}, nil
}

// Settle advances past the confirmed question once its feedback has
// finished. It returns the completion event when that was the last question.
// While a prompt is open it returns ErrPromptPending and Resolve advances
// instead once the prompt is declined.
func (e *Engine) Settle(ctx context.Context) (*Completed, error) {
	if e.session == nil {
		return nil, ErrNotActive
	}
	h := e.pending
	if h == nil {
		return nil, ErrNothingToSettle
	}
	if h.Canceled() {
		e.pending = nil
		return nil, feedback.ErrCanceled
	}
	if !h.Settled() {
		return nil, ErrFeedbackPending
	}
	if e.prompt != nil {
		return nil, ErrPromptPending
	}
	e.pending = nil
	return e.advance(ctx)
}

// Await blocks until h resolves and then settles. h must be the handle
// returned by the latest Confirm.
func (e *Engine) Await(ctx context.Context, h *feedback.Handle) (*Completed, error) {
	if err := h.Wait(ctx); err != nil {
		return nil, err
	}
	if h != e.pending {
		return nil, feedback.ErrCanceled
	}
	return e.Settle(ctx)
}

// RequestSkip raises the skip prompt. It returns nil while feedback is
// playing or another prompt is pending.
func (e *Engine) RequestSkip() (*prompt.Request, error) {
	s := e.session
	if s == nil {
		return nil, ErrNotActive
	}
	if s.Status != StatusNeutral || e.prompt != nil {
		return nil, nil
	}
	req := prompt.SkipQuestion()
	e.prompt = &req
	return &req, nil
}

// RequestStop raises the stop prompt. It replaces a pending skip prompt.
func (e *Engine) RequestStop() (*prompt.Request, error) {
	if e.session == nil {
		return nil, ErrNotActive
	}
	req := prompt.StopQuiz()
	e.prompt = &req
	return &req, nil
}

// Resolve answers the pending prompt id with label. Accepting a skip
// advances without scoring, accepting a stop abandons the session, and
// declining changes nothing.
func (e *Engine) Resolve(ctx context.Context, id prompt.ID, label string) (*Completed, error) {
	req := e.prompt
	if req == nil || req.ID != id {
		return nil, fmt.Errorf("%w: %q is not pending", ErrUnknownPrompt, id)
	}
	if !req.Has(label) {
		return nil, fmt.Errorf("%w: %q has no option %q", ErrUnknownPrompt, id, label)
	}
	e.prompt = nil

	if !prompt.Accepted(label) {
		if h := e.pending; h != nil && h.Settled() && !h.Canceled() {
			e.pending = nil
			return e.advance(ctx)
		}
		return nil, nil
	}
	switch id {
	case prompt.Skip:
		return e.advance(ctx)
	case prompt.Stop:
		e.Abandon()
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrompt, id)
	}
}

// Ask raises req through c and resolves it with the answer. A failed or
// canceled confirmation counts as declining.
func (e *Engine) Ask(ctx context.Context, c prompt.Confirmer, req *prompt.Request) (*Completed, error) {
	if req == nil {
		return nil, nil
	}
	label, err := c.Confirm(ctx, *req)
	if err != nil {
		if e.prompt != nil && e.prompt.ID == req.ID {
			e.prompt = nil
		}
		return nil, fmt.Errorf("confirm %s: %w", req.ID, err)
	}
	return e.Resolve(ctx, req.ID, label)
}

// Abandon tears the session down without completing it. Pending feedback is
// canceled and no completion event is emitted.
func (e *Engine) Abandon() {
	if e.pending != nil {
		e.pending.Cancel()
		e.pending = nil
	}
	e.session = nil
	e.prompt = nil
	e.phase = PhaseLoading
}

func (e *Engine) advance(ctx context.Context) (*Completed, error) {
	s := e.session
	if !s.IsLast() {
		s.CurrentQuestion++
		s.Selected = NoSelection
		s.Status = StatusNeutral
		return nil, nil
	}

	ev := Completed{
		Quiz:           s.Quiz,
		Score:          s.Score,
		TotalQuestions: s.TotalQuestions(),
	}
	s.Phase = PhaseFinished
	e.session = nil
	e.phase = PhaseFinished

	var errs []error
	for _, h := range e.handlers {
		if err := h.SessionCompleted(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return &ev, errors.Join(errs...)
}
