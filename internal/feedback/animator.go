package feedback

import (
	"sync"
	"time"
)

// Animator runs an animation on its own clock. Play calls done exactly once
// when the last step has finished, unless the returned stop func is called
// first. done may be called before Play returns.
type Animator interface {
	Play(a Animation, done func()) (stop func())
}

// TimedAnimator runs steps back to back on wall-clock timers.
type TimedAnimator struct{}

// NewTimedAnimator creates a TimedAnimator.
func NewTimedAnimator() *TimedAnimator {
	return &TimedAnimator{}
}

func (*TimedAnimator) Play(a Animation, done func()) func() {
	var (
		mu      sync.Mutex
		timer   *time.Timer
		stopped bool
	)

	var run func(i int)
	run = func(i int) {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if i >= len(a.Steps) {
			stopped = true
			done()
			return
		}
		timer = time.AfterFunc(a.Steps[i].Duration, func() { run(i + 1) })
	}
	run(0)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
		if timer != nil {
			timer.Stop()
		}
	}
}

// InstantAnimator finishes every animation immediately. Useful for headless
// runs where nothing is drawn.
type InstantAnimator struct{}

func (InstantAnimator) Play(_ Animation, done func()) func() {
	done()
	return func() {}
}

// ManualAnimator finishes animations only when told to. It records every
// animation it was asked to play.
type ManualAnimator struct {
	mu      sync.Mutex
	pending []*manualPlay
	Played  []Animation
}

type manualPlay struct {
	done    func()
	stopped bool
}

// NewManualAnimator creates a ManualAnimator.
func NewManualAnimator() *ManualAnimator {
	return &ManualAnimator{}
}

func (m *ManualAnimator) Play(a Animation, done func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &manualPlay{done: done}
	m.pending = append(m.pending, p)
	m.Played = append(m.Played, a)
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		p.stopped = true
	}
}

// Finish completes the oldest running animation. Returns false if none is
// running.
func (m *ManualAnimator) Finish() bool {
	m.mu.Lock()
	var p *manualPlay
	for len(m.pending) > 0 && p == nil {
		next := m.pending[0]
		m.pending = m.pending[1:]
		if !next.stopped {
			p = next
		}
	}
	m.mu.Unlock()

	if p == nil {
		return false
	}
	p.done()
	return true
}

// Running returns the number of animations not yet finished or stopped.
func (m *ManualAnimator) Running() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.pending {
		if !p.stopped {
			n++
		}
	}
	return n
}
