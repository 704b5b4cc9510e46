// Package gesture interprets a horizontal drag on the question card.
//
// Only leftward movement counts. Releasing past the skip threshold produces
// a skip request, which the caller must still confirm with the user. The
// card always springs back to rest after a release.
package gesture

import (
	"time"

	"github.com/abhisek/quizcard/internal/feedback"
)

const (
	// DefaultSkipThreshold is the translation a drag must pass to request a skip.
	DefaultSkipThreshold = -200.0

	// CardInclination divides the displacement to get the card tilt in degrees.
	CardInclination = 10.0

	// DefaultReboundDuration is how long the card takes to return to rest.
	DefaultReboundDuration = 250 * time.Millisecond
)

// Interpret reports whether a drag that ended at translation requests a skip.
func Interpret(translation, threshold float64) bool {
	return translation < threshold
}

// Clamp drops rightward movement.
func Clamp(translation float64) float64 {
	if translation > 0 {
		return 0
	}
	return translation
}

// Track is the state of a drag in progress.
type Track struct {
	Displacement float64
}

// Rotation is the card tilt in degrees for the current displacement.
func (t Track) Rotation() float64 {
	return t.Displacement / CardInclination
}

// Release describes the end of a drag.
type Release struct {
	// SkipRequested is set when the drag crossed the threshold.
	SkipRequested bool

	// From is the displacement the card springs back from.
	From float64
}

// Navigator turns drag updates into a skip request. It is owned by a single
// goroutine.
type Navigator struct {
	threshold float64
	animator  feedback.Animator
	reboundIn time.Duration
	now       func() time.Time

	track   *Track
	rebound *feedback.Handle
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithThreshold overrides DefaultSkipThreshold.
func WithThreshold(t float64) Option {
	return func(n *Navigator) { n.threshold = t }
}

// WithAnimator sets the animator used for the rebound.
func WithAnimator(a feedback.Animator) Option {
	return func(n *Navigator) { n.animator = a }
}

// WithReboundDuration overrides DefaultReboundDuration.
func WithReboundDuration(d time.Duration) Option {
	return func(n *Navigator) { n.reboundIn = d }
}

// WithClock overrides the clock used to sample the rebound.
func WithClock(now func() time.Time) Option {
	return func(n *Navigator) { n.now = now }
}

// New creates a Navigator.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		threshold: DefaultSkipThreshold,
		animator:  feedback.NewTimedAnimator(),
		reboundIn: DefaultReboundDuration,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Threshold returns the configured skip threshold.
func (n *Navigator) Threshold() float64 {
	return n.threshold
}

// Update records the cumulative translation since the drag started.
func (n *Navigator) Update(translation float64) {
	if n.track == nil {
		n.stopRebound()
		n.track = &Track{}
	}
	n.track.Displacement = Clamp(translation)
}

// End finishes the drag at translation. The track is cleared and the card
// rebounds to rest whatever the outcome.
func (n *Navigator) End(translation float64) Release {
	n.Update(translation)
	from := n.track.Displacement
	n.track = nil

	n.rebound = feedback.Run(n.animator, feedback.Rebound(from, n.reboundIn), n.now)
	return Release{
		SkipRequested: Interpret(translation, n.threshold),
		From:          from,
	}
}

// Dragging reports whether a drag is in progress.
func (n *Navigator) Dragging() bool {
	return n.track != nil
}

// Settling reports whether the card is still springing back.
func (n *Navigator) Settling() bool {
	return n.rebound != nil && !n.rebound.Settled() && !n.rebound.Canceled()
}

// Rebound returns the handle of the last rebound, or nil.
func (n *Navigator) Rebound() *feedback.Handle {
	return n.rebound
}

// Displacement is the current horizontal offset of the card.
func (n *Navigator) Displacement() float64 {
	if n.track != nil {
		return n.track.Displacement
	}
	if n.Settling() {
		return n.rebound.Value()
	}
	return 0
}

// Rotation is the current card tilt in degrees.
func (n *Navigator) Rotation() float64 {
	return Track{Displacement: n.Displacement()}.Rotation()
}

// Reset drops any drag or rebound, e.g. when a new question is shown.
func (n *Navigator) Reset() {
	n.track = nil
	n.stopRebound()
}

func (n *Navigator) stopRebound() {
	if n.rebound != nil {
		n.rebound.Cancel()
		n.rebound = nil
	}
}
