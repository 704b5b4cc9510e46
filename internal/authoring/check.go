package authoring

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizcard/internal/catalog"
)

// Check inspects a generated quiz.
type Check interface {
	Name() string
	Check(q catalog.Quiz, req Request) *ValidationError
}

// ValidationError says why a draft was rejected.
type ValidationError struct {
	Check   string
	Message string

	// Retryable is set when asking again is likely to help.
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("check %q: %s", e.Check, e.Message)
}

const maxChoices = 5

// Structure checks the question count, the choices and the correct index.
type Structure struct{}

func (Structure) Name() string { return "structure" }

func (s Structure) Check(q catalog.Quiz, req Request) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Check: s.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	if strings.TrimSpace(q.Title) == "" {
		return fail("empty title")
	}
	if len(q.Questions) != req.Questions {
		return fail("got %d questions, want %d", len(q.Questions), req.Questions)
	}
	for i, question := range q.Questions {
		if strings.TrimSpace(question.Title) == "" {
			return fail("question %d has no title", i+1)
		}
		if n := len(question.Choices); n < 2 || n > maxChoices {
			return fail("question %d has %d choices, want 2 to %d", i+1, n, maxChoices)
		}
		if question.Correct < 0 || question.Correct >= len(question.Choices) {
			return fail("question %d: correct index %d out of range", i+1, question.Correct)
		}
		seen := make(map[string]bool, len(question.Choices))
		for _, c := range question.Choices {
			key := normalize(c)
			if key == "" {
				return fail("question %d has an empty choice", i+1)
			}
			if seen[key] {
				return fail("question %d repeats choice %q", i+1, c)
			}
			seen[key] = true
		}
	}
	return nil
}

// Duplicates rejects questions that repeat each other or Request.Avoid.
type Duplicates struct{}

func (Duplicates) Name() string { return "duplicates" }

func (d Duplicates) Check(q catalog.Quiz, req Request) *ValidationError {
	seen := make(map[string]bool, len(req.Avoid)+len(q.Questions))
	for _, t := range req.Avoid {
		seen[normalize(t)] = true
	}
	for i, question := range q.Questions {
		key := normalize(question.Title)
		if seen[key] {
			return &ValidationError{
				Check:     d.Name(),
				Message:   fmt.Sprintf("question %d repeats %q", i+1, question.Title),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
