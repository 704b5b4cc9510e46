package catalog

import "fmt"

// QuizNotFoundError is returned when no quiz matches the requested id.
type QuizNotFoundError struct {
	ID string
}

func (e *QuizNotFoundError) Error() string {
	return fmt.Sprintf("quiz %q not found", e.ID)
}

// FormatError indicates a catalog document that failed validation.
type FormatError struct {
	Source string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid catalog %s: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
