package finish

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/ui/layout"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

// FinishScreen shows the result of a completed quiz.
type FinishScreen struct {
	points int
	total  int
}

var _ screen.Screen = (*FinishScreen)(nil)
var _ screen.KeyHintProvider = (*FinishScreen)(nil)

// New creates a FinishScreen for the given score.
func New(points, total int) *FinishScreen {
	return &FinishScreen{points: points, total: total}
}

// FromParams builds a FinishScreen from router params.
func FromParams(params map[string]string) (screen.Screen, error) {
	points, total, err := router.ParseFinishParams(params)
	if err != nil {
		return nil, fmt.Errorf("finish params: %w", err)
	}
	return New(points, total), nil
}

// Message returns the result line.
func (s *FinishScreen) Message() string {
	return fmt.Sprintf("You got %d out of %d right", s.points, s.total)
}

func (s *FinishScreen) Init() tea.Cmd {
	return nil
}

func (s *FinishScreen) Title() string {
	return "Finished"
}

func (s *FinishScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *FinishScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *FinishScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Awesome!")

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(s.Message())

	var verdict string
	switch {
	case s.total > 0 && s.points == s.total:
		verdict = theme.Correct.Render("Perfect score")
	case s.points == 0:
		verdict = theme.Hint.Render("Better luck next time")
	}

	parts := []string{heading, "", body}
	if verdict != "" {
		parts = append(parts, "", verdict)
	}
	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
	hint := theme.Hint.Render("Press Enter to go back")

	return layout.Center(strings.Join([]string{card, "", hint}, "\n"), width, height)
}
