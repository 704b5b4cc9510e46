package quiz

import (
	"time"

	"github.com/abhisek/quizcard/internal/feedback"
)

// quizStartMsg asks the screen to resolve its quiz.
type quizStartMsg struct{}

// feedbackSettledMsg is sent when a feedback animation has resolved.
type feedbackSettledMsg struct {
	handle *feedback.Handle
	err    error
}

// frameMsg drives card animation while something is moving.
type frameMsg time.Time

// nudgeEndMsg ends a keyboard drag once no nudge arrived for a while.
type nudgeEndMsg struct {
	seq int
}
