package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/ui/theme"
)

const (
	MinWidth  = 48
	MinHeight = 16

	// HeaderHeight and FooterHeight are the rows taken by the chrome when
	// no warning is shown.
	HeaderHeight = 3
	FooterHeight = 3

	CompactHeightThreshold = 26
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight reports whether a terminal of this height should use the
// condensed screen variants.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// TooSmall returns a resize notice when the terminal cannot fit a card.
func TooSmall(width, height int) (string, bool) {
	if width >= MinWidth && height >= MinHeight {
		return "", false
	}
	notice := fmt.Sprintf("quizcard needs %dx%d\n\nyour terminal is %dx%d", MinWidth, MinHeight, width, height)
	return Center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(notice), width, height), true
}

// Frame is the chrome around the active screen.
type Frame struct {
	Width  int
	Height int
	header string
	footer string
}

// NewFrame renders the header and footer for a terminal of width x height.
func NewFrame(width, height int, title string, hints []KeyHint, warning string) Frame {
	f := Frame{Width: width, Height: height}
	f.header = bar(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("quizcard"), title)

	keys := make([]string, 0, len(hints))
	for _, h := range hints {
		keys = append(keys, theme.Bold.Render(h.Key)+" "+theme.Dim.Render(h.Description))
	}
	footer := strings.Join(keys, "  ·  ")
	if warning != "" {
		footer += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("! "+warning)
	}
	f.footer = bar(width, footer, "")
	return f
}

// BodyHeight is the number of rows left for the screen.
func (f Frame) BodyHeight() int {
	return max(0, f.Height-lipgloss.Height(f.header)-lipgloss.Height(f.footer))
}

// Render stacks header, body and footer.
func (f Frame) Render(body string) string {
	body = lipgloss.NewStyle().Width(f.Width).Height(f.BodyHeight()).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, f.header, body, f.footer)
}

// bar draws a bordered full-width line with left text and a centered title.
func bar(width int, left, title string) string {
	inner := max(0, width-4)
	line := left
	if title != "" {
		gap := max(1, (inner-lipgloss.Width(title))/2-lipgloss.Width(left))
		line += strings.Repeat(" ", gap) + lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(line)
}

// Center places s in the middle of a width x height box.
func Center(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
