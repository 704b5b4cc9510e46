package session

import "github.com/abhisek/quizcard/internal/catalog"

// SessionPhase represents the lifecycle phase of the engine.
type SessionPhase int

const (
	PhaseLoading  SessionPhase = iota // No quiz resolved yet
	PhaseActive                       // Serving questions
	PhaseFinished                     // Last question advanced past
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// NoSelection is the Selected value when no choice is picked.
const NoSelection = -1

// Session is one quiz attempt. It is owned by the Engine; callers only see
// copies returned by Engine.Snapshot.
type Session struct {
	// Quiz is set once at start and never changes.
	Quiz catalog.Quiz

	// CurrentQuestion is the index into Quiz.Questions.
	CurrentQuestion int

	// Score is the number of questions answered correctly so far.
	Score int

	// Selected is the picked choice index, or NoSelection.
	Selected int

	// Status is the evaluation state of the current question.
	Status Status

	// Phase is PhaseActive for as long as the engine holds the session.
	Phase SessionPhase
}

func newSession(q catalog.Quiz) *Session {
	return &Session{
		Quiz:     q,
		Selected: NoSelection,
		Status:   StatusNeutral,
		Phase:    PhaseActive,
	}
}

// Question returns the current question.
func (s *Session) Question() catalog.Question {
	return s.Quiz.Questions[s.CurrentQuestion]
}

// TotalQuestions returns the number of questions in the quiz.
func (s *Session) TotalQuestions() int {
	return len(s.Quiz.Questions)
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.CurrentQuestion == len(s.Quiz.Questions)-1
}

// HasSelection reports whether a choice is picked.
func (s *Session) HasSelection() bool {
	return s.Selected != NoSelection
}
