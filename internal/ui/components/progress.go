package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/ui/theme"
)

// ProgressBar shows how far into a quiz the user is.
type ProgressBar struct {
	Current int // 1-based question number
	Total   int
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{Current: current, Total: total, Width: width}
}

// Label returns the "Question i/N" caption.
func (p ProgressBar) Label() string {
	return fmt.Sprintf("Question %d/%d", p.Current, p.Total)
}

// Percent is the share of questions reached.
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label()) + "  "

	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	filled = max(0, min(filled, barWidth))

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return label + filledStr + emptyStr
}
