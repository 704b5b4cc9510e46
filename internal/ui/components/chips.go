package components

import (
	"strings"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

// LevelChips is the All/Easy/Medium/Hard filter row.
type LevelChips struct {
	Selected int // 0 is All, then catalog.Levels in order
}

// Next moves to the next chip, wrapping around.
func (c *LevelChips) Next() {
	c.Selected = (c.Selected + 1) % (len(catalog.Levels) + 1)
}

// Level returns the chosen level. ok is false for All.
func (c LevelChips) Level() (level catalog.Level, ok bool) {
	if c.Selected == 0 {
		return 0, false
	}
	return catalog.Levels[c.Selected-1], true
}

// Allows reports whether a quiz at level passes the filter.
func (c LevelChips) Allows(level catalog.Level) bool {
	want, ok := c.Level()
	return !ok || want == level
}

// View renders the chips on one line.
func (c LevelChips) View() string {
	parts := make([]string, 0, len(catalog.Levels)+1)
	for i := 0; i <= len(catalog.Levels); i++ {
		label, style := "All", theme.ChipInactive
		if i > 0 {
			l := catalog.Levels[i-1]
			label, style = l.String(), style.Foreground(theme.LevelColor(l))
		}
		if i == c.Selected {
			style = theme.ChipActive
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}
