package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcard/internal/ui/layout"
)

// Screen is one entry of the router's stack.
type Screen interface {
	// Init runs once when the screen is pushed.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and the footer.
	View(width, height int) string

	// Title is shown centered in the header.
	Title() string
}

// KeyHintProvider screens list their own keys in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher screens reload their data when they are uncovered by a pop.
type Refresher interface {
	Refresh() tea.Cmd
}
