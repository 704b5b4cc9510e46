package quiz

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/feedback"
	"github.com/abhisek/quizcard/internal/session"
	"github.com/abhisek/quizcard/internal/ui/components"
	"github.com/abhisek/quizcard/internal/ui/layout"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.dialog != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Dismiss"},
		}
	}
	hints := make([]layout.KeyHint, 0, 5)
	for _, b := range []key.Binding{s.keys.Up, s.keys.Confirm, s.keys.Skip, s.keys.Nudge, s.keys.Stop} {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg),
			width, height)
	}

	snap, ok := s.engine.Snapshot()
	if !ok {
		return layout.Center(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.spinner.View()+" Loading quiz..."),
			width, height)
	}

	if s.dialog != nil {
		return layout.Center(s.dialog.View(), width, height)
	}
	return s.renderQuestion(snap, width, height)
}

func (s *QuizScreen) renderQuestion(snap session.Session, width, height int) string {
	cw := components.ContentWidth(width)
	q := snap.Question()

	var b strings.Builder
	progress := components.NewProgressBar(snap.CurrentQuestion+1, snap.TotalQuestions(), cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%s · score %d", snap.Quiz.Level, snap.Score))))
	b.WriteString("\n\n")

	list := components.ChoiceList{
		Choices:  q.Choices,
		Cursor:   s.cursor,
		Selected: snap.Selected,
		State:    choiceState(snap.Status),
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-6).Render(q.Title) +
		"\n\n" + list.View()

	card := components.Card{
		Body:     strings.TrimRight(body, "\n"),
		Width:    cw,
		Offset:   s.cardOffset(snap.Status),
		Rotation: s.gesture.Rotation(),
		Tint:     choiceState(snap.Status),
	}
	b.WriteString(card.View(width))

	if snap.Status != session.StatusNeutral {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statusLine(snap.Status)))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

// cardOffset combines drag displacement with the wrong-answer shake.
func (s *QuizScreen) cardOffset(status session.Status) float64 {
	offset := s.gesture.Displacement()
	if status == session.StatusIncorrect {
		offset += feedback.ShakeOffset(s.gate.Value())
	}
	return offset
}

func choiceState(st session.Status) components.ChoiceState {
	switch st {
	case session.StatusCorrect:
		return components.ChoicesCorrect
	case session.StatusIncorrect:
		return components.ChoicesIncorrect
	default:
		return components.ChoicesOpen
	}
}

func statusLine(st session.Status) string {
	if st == session.StatusCorrect {
		return theme.Correct.Render("✓ Correct!")
	}
	return theme.Incorrect.Render("✗ Not quite")
}
