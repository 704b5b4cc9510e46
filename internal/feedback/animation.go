// Package feedback turns the correct/incorrect reaction into an awaitable
// step so the session can hold its transition until the user has seen it.
package feedback

import "time"

// Step moves the animated value linearly to To over Duration.
type Step struct {
	To       float64
	Duration time.Duration
}

// Animation is a sequence of steps starting from 0. Steps run in order,
// each one starting where the previous one ended.
type Animation struct {
	Name  string
	Steps []Step
}

// Default feedback timings.
const (
	DefaultCorrectDuration = 300 * time.Millisecond
	DefaultShakeOut        = 400 * time.Millisecond
	DefaultShakeBack       = 300 * time.Millisecond
)

// Pulse is the reaction to a correct answer: a single short step.
func Pulse(d time.Duration) Animation {
	return Animation{
		Name:  "pulse",
		Steps: []Step{{To: 1, Duration: d}},
	}
}

// Shake is the reaction to a wrong answer: swing out to 3 half-periods and
// settle back to rest.
func Shake(out, back time.Duration) Animation {
	return Animation{
		Name: "shake",
		Steps: []Step{
			{To: 3, Duration: out},
			{To: 0, Duration: back},
		},
	}
}

// Rebound returns a card from displacement from back to rest.
func Rebound(from float64, d time.Duration) Animation {
	return Animation{
		Name:  "rebound",
		Steps: []Step{{To: 0, Duration: d}},
	}.startingAt(from)
}

// startingAt is encoded as a zero-length first step.
func (a Animation) startingAt(v float64) Animation {
	steps := make([]Step, 0, len(a.Steps)+1)
	steps = append(steps, Step{To: v})
	steps = append(steps, a.Steps...)
	a.Steps = steps
	return a
}

// Duration is the total running time of the animation.
func (a Animation) Duration() time.Duration {
	var d time.Duration
	for _, s := range a.Steps {
		d += s.Duration
	}
	return d
}

// Final is the value the animation rests at once finished.
func (a Animation) Final() float64 {
	if len(a.Steps) == 0 {
		return 0
	}
	return a.Steps[len(a.Steps)-1].To
}

// ValueAt samples the animation after elapsed time.
func (a Animation) ValueAt(elapsed time.Duration) float64 {
	from := 0.0
	for _, s := range a.Steps {
		if elapsed < s.Duration {
			frac := float64(elapsed) / float64(s.Duration)
			return from + (s.To-from)*frac
		}
		elapsed -= s.Duration
		from = s.To
	}
	return from
}

// shakeTable maps shake progress (0..3) to a horizontal offset.
var shakeTable = [...]struct{ in, out float64 }{
	{0, 0}, {0.5, -15}, {1, 0}, {1.5, 15}, {2, 0}, {2.5, -15}, {3, 0},
}

// ShakeOffset converts a shake value to a horizontal offset in points.
// Values outside [0, 3] are clamped.
func ShakeOffset(v float64) float64 {
	if v <= shakeTable[0].in {
		return shakeTable[0].out
	}
	for i := 1; i < len(shakeTable); i++ {
		lo, hi := shakeTable[i-1], shakeTable[i]
		if v <= hi.in {
			frac := (v - lo.in) / (hi.in - lo.in)
			return lo.out + (hi.out-lo.out)*frac
		}
	}
	return shakeTable[len(shakeTable)-1].out
}
