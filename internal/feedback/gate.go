package feedback

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrGateBusy is returned when a feedback animation is requested while
	// the previous one has not resolved.
	ErrGateBusy = errors.New("feedback: previous animation still running")

	// ErrCanceled is returned by Wait when the handle was canceled.
	ErrCanceled = errors.New("feedback: canceled")
)

// Handle tracks one running feedback animation. It resolves exactly once,
// either by finishing or by being canceled.
type Handle struct {
	anim  Animation
	began time.Time
	now   func() time.Time

	done     chan struct{}
	once     sync.Once
	mu       sync.Mutex
	canceled bool
	stop     func()
}

func newHandle(a Animation, now func() time.Time) *Handle {
	return &Handle{
		anim:  a,
		began: now(),
		now:   now,
		done:  make(chan struct{}),
	}
}

// Animation returns the animation this handle is running.
func (h *Handle) Animation() Animation {
	return h.anim
}

// Done is closed when the handle resolves.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Settled reports whether the animation ran to completion.
func (h *Handle) Settled() bool {
	if !h.resolved() {
		return false
	}
	return !h.Canceled()
}

// Canceled reports whether the handle was canceled before finishing.
func (h *Handle) Canceled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.canceled
}

// Wait blocks until the animation finishes. Returns ErrCanceled if the
// handle was canceled, or ctx.Err() if ctx ends first.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		if h.Canceled() {
			return ErrCanceled
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel discards the pending resolution and stops the animation.
// It has no effect once the handle has resolved.
func (h *Handle) Cancel() {
	h.once.Do(func() {
		h.mu.Lock()
		h.canceled = true
		stop := h.stop
		h.mu.Unlock()
		if stop != nil {
			stop()
		}
		close(h.done)
	})
}

// Value samples the animation at the current time.
func (h *Handle) Value() float64 {
	if h.Canceled() {
		return 0
	}
	if h.resolved() {
		return h.anim.Final()
	}
	return h.anim.ValueAt(h.now().Sub(h.began))
}

func (h *Handle) resolve() {
	h.once.Do(func() { close(h.done) })
}

func (h *Handle) resolved() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Run plays a on animator outside any gate and returns its handle.
func Run(animator Animator, a Animation, now func() time.Time) *Handle {
	if now == nil {
		now = time.Now
	}
	h := newHandle(a, now)
	h.start(animator)
	return h
}

func (h *Handle) start(animator Animator) {
	h.setStop(animator.Play(h.anim, h.resolve))
}

func (h *Handle) setStop(stop func()) {
	h.mu.Lock()
	if !h.canceled {
		h.stop = stop
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	stop()
}

// Gate plays correct/incorrect feedback and hands back a Handle the caller
// awaits before changing state. Only one animation may run at a time.
type Gate struct {
	animator Animator
	correct  Animation
	shake    Animation
	now      func() time.Time

	mu      sync.Mutex
	current *Handle
}

// Option configures a Gate.
type Option func(*Gate)

// WithCorrect overrides the correct-answer animation.
func WithCorrect(a Animation) Option {
	return func(g *Gate) { g.correct = a }
}

// WithShake overrides the wrong-answer animation.
func WithShake(a Animation) Option {
	return func(g *Gate) { g.shake = a }
}

// WithClock overrides the clock used to sample animation values.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// NewGate creates a Gate driving animator.
func NewGate(animator Animator, opts ...Option) *Gate {
	g := &Gate{
		animator: animator,
		correct:  Pulse(DefaultCorrectDuration),
		shake:    Shake(DefaultShakeOut, DefaultShakeBack),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PlayCorrect starts the correct-answer reaction.
func (g *Gate) PlayCorrect() (*Handle, error) {
	return g.play(g.correct)
}

// PlayIncorrect starts the wrong-answer shake.
func (g *Gate) PlayIncorrect() (*Handle, error) {
	return g.play(g.shake)
}

func (g *Gate) play(a Animation) (*Handle, error) {
	g.mu.Lock()
	if g.current != nil && !g.current.resolved() {
		g.mu.Unlock()
		return nil, ErrGateBusy
	}
	h := newHandle(a, g.now)
	g.current = h
	g.mu.Unlock()

	h.start(g.animator)
	return h, nil
}

// Current returns the most recent handle, or nil if nothing was played.
func (g *Gate) Current() *Handle {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Busy reports whether an animation is running.
func (g *Gate) Busy() bool {
	h := g.Current()
	return h != nil && !h.resolved()
}

// Value samples the running animation, or 0 when idle.
func (g *Gate) Value() float64 {
	h := g.Current()
	if h == nil || h.resolved() {
		return 0
	}
	return h.Value()
}

// Abort cancels the running animation, if any.
func (g *Gate) Abort() {
	if h := g.Current(); h != nil {
		h.Cancel()
	}
}
