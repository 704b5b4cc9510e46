package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/catalog"
)

// Palette.
var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#0EA5E9")
	Accent    = lipgloss.Color("#EAB308")
	Success   = lipgloss.Color("#16A34A")
	Error     = lipgloss.Color("#DC2626")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#8B95A7")
	BgDark    = lipgloss.Color("#111827")
	BgCard    = lipgloss.Color("#1F2937")
	Border    = lipgloss.Color("#374151")

	// Tints behind the card while feedback plays.
	TintCorrect   = lipgloss.Color("#052E16")
	TintIncorrect = lipgloss.Color("#450A0A")
)

// LevelColor is the chip and badge color of a difficulty level.
func LevelColor(l catalog.Level) color.Color {
	switch l {
	case catalog.LevelEasy:
		return Success
	case catalog.LevelHard:
		return Error
	default:
		return Accent
	}
}

var (
	Body = lipgloss.NewStyle().Foreground(Text)
	Bold = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Dim  = lipgloss.NewStyle().Foreground(TextDim)
	Hint = Dim.Italic(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// Dialog frames confirmation prompts.
	Dialog = Card.BorderForeground(Primary).Padding(1, 3)

	Selected  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Buttons and chips.
var (
	button = lipgloss.NewStyle().Padding(0, 2)

	ButtonActive      = button.Background(Primary).Foreground(Text).Bold(true)
	ButtonDestructive = button.Background(Error).Foreground(Text).Bold(true)
	ButtonInactive    = button.Foreground(TextDim).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Border)

	ChipActive   = lipgloss.NewStyle().Background(Secondary).Foreground(BgDark).Bold(true).Padding(0, 1)
	ChipInactive = lipgloss.NewStyle().Foreground(TextDim).Padding(0, 1)
)
