package session

import (
	"fmt"

	"github.com/abhisek/quizcard/internal/catalog"
)

// Status is the evaluation state of the current question.
type Status int

const (
	StatusNeutral   Status = iota // Awaiting an answer
	StatusCorrect                 // Answered correctly, feedback playing
	StatusIncorrect               // Answered wrong, feedback playing
)

func (s Status) String() string {
	switch s {
	case StatusNeutral:
		return "neutral"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// InvalidChoiceError is returned for a choice index outside the question's
// choices.
type InvalidChoiceError struct {
	Index int
	Count int
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice %d: question has %d choices", e.Index, e.Count)
}

// Evaluate decides whether selected is the correct choice for q. There is
// no partial credit.
func Evaluate(q catalog.Question, selected int) (Status, error) {
	if selected < 0 || selected >= len(q.Choices) {
		return StatusNeutral, &InvalidChoiceError{Index: selected, Count: len(q.Choices)}
	}
	if selected == q.Correct {
		return StatusCorrect, nil
	}
	return StatusIncorrect, nil
}
