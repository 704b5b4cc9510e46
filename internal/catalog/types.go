package catalog

import (
	"fmt"
	"strings"
)

// Level is the difficulty band of a quiz.
type Level int

const (
	LevelEasy   Level = 1
	LevelMedium Level = 2
	LevelHard   Level = 3
)

// Levels lists every level in display order.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l >= LevelEasy && l <= LevelHard
}

// ParseLevel parses a level name ("easy", "medium", "hard") or number.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return LevelEasy, nil
	case "medium", "2":
		return LevelMedium, nil
	case "hard", "3":
		return LevelHard, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// Question is a single multiple-choice question.
type Question struct {
	// Title is the prompt shown above the choices.
	Title string `json:"title"`

	// Choices are the answer texts in display order.
	Choices []string `json:"alternatives"`

	// Correct is the index into Choices of the right answer.
	Correct int `json:"correct"`
}

// Quiz is an immutable catalog entry.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Level       Level      `json:"level"`
	Questions   []Question `json:"questions"`
}

// Validate checks the structural invariants of a quiz.
func (q Quiz) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quiz has empty id")
	}
	if !q.Level.Valid() {
		return fmt.Errorf("quiz %q: invalid level %d", q.ID, int(q.Level))
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %q: no questions", q.ID)
	}
	for i, question := range q.Questions {
		if len(question.Choices) < 2 {
			return fmt.Errorf("quiz %q question %d: need at least 2 choices, got %d", q.ID, i, len(question.Choices))
		}
		if question.Correct < 0 || question.Correct >= len(question.Choices) {
			return fmt.Errorf("quiz %q question %d: correct index %d out of range [0, %d)",
				q.ID, i, question.Correct, len(question.Choices))
		}
	}
	return nil
}
