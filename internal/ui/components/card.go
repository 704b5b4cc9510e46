package components

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/ui/theme"
)

// CellWidthPx is the width of one terminal cell in gesture points.
const CellWidthPx = 8.0

// ContentWidth returns the card width for a frame width.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 8
	if w > 70 {
		w = 70
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card is the question card. Offset is a horizontal displacement in points
// (drag or shake) and Rotation the tilt in degrees.
type Card struct {
	Body     string
	Width    int
	Offset   float64
	Rotation float64
	Tint     ChoiceState
}

// Shift converts Offset to whole cells.
func (c Card) Shift() int {
	return int(math.Round(c.Offset / CellWidthPx))
}

// View renders the card shifted by its offset within frameWidth. Leftward
// tilt is shown by a skip hint that strengthens as the card turns.
func (c Card) View(frameWidth int) string {
	style := theme.Card.Width(c.Width)
	switch c.Tint {
	case ChoicesCorrect:
		style = style.Background(theme.TintCorrect).BorderForeground(theme.Success)
	case ChoicesIncorrect:
		style = style.Background(theme.TintIncorrect).BorderForeground(theme.Error)
	}
	if c.Rotation <= -10 {
		style = style.BorderForeground(theme.Accent)
	}
	box := style.Render(c.Body)

	left := (frameWidth-lipgloss.Width(box))/2 + c.Shift()
	if left < 0 {
		left = 0
	}

	var b strings.Builder
	for i, line := range strings.Split(box, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(line)
	}

	if hint := c.skipHint(); hint != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(frameWidth, lipgloss.Center, hint))
	}
	return b.String()
}

func (c Card) skipHint() string {
	switch {
	case c.Rotation <= -20:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("« release to skip")
	case c.Rotation < 0:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("« drag further to skip")
	default:
		return ""
	}
}
