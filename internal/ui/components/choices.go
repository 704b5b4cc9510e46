package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/ui/theme"
)

// ChoiceState controls how choices are colored.
type ChoiceState int

const (
	ChoicesOpen      ChoiceState = iota // Awaiting an answer
	ChoicesCorrect                      // Picked choice was right
	ChoicesIncorrect                    // Picked choice was wrong
)

// ChoiceList renders the answers of a question, numbered from 1.
type ChoiceList struct {
	Choices  []string
	Cursor   int
	Selected int // -1 when nothing is picked
	State    ChoiceState
}

// View renders the choice list.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Cursor && c.State == ChoicesOpen {
			prefix = "▸ "
		}
		mark := "○"
		if i == c.Selected {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, choice)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == c.Selected && c.State == ChoicesCorrect:
			style = theme.Correct
		case i == c.Selected && c.State == ChoicesIncorrect:
			style = theme.Incorrect
		case c.State != ChoicesOpen:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected, i == c.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
