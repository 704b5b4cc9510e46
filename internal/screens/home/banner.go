package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

const bannerFull = `┌─┐ ┬ ┬ ┬ ┌─┐ ┌─┐ ┌─┐ ┬─┐ ┌┬┐
│─┼┐│ │ │ ┌─┘ │   ├─┤ ├┬┘  ││
└─┘└└─┘ ┴ └─┘ └─┘ ┴ ┴ ┴└─ ─┴┘`

const bannerCompact = "Q U I Z C A R D"

func renderBanner(width int, compact bool) string {
	art := bannerFull
	if compact {
		art = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(art)
}

// renderLastResult summarizes the most recent attempt, if any.
func renderLastResult(rec *store.HistoryRecord, width int) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim)
	if rec == nil {
		return style.Italic(true).Render("No quizzes taken yet")
	}
	return style.Render(fmt.Sprintf("Last: %s (%s) %d/%d",
		rec.Title, catalog.Level(rec.Level), rec.Score, rec.TotalQuestions))
}
