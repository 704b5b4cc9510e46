package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/prompt"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

// DialogResultMsg is sent when the user answers a dialog.
type DialogResultMsg struct {
	ID    prompt.ID
	Label string
}

// Dialog renders a confirmation prompt as a modal with one button per option.
type Dialog struct {
	Request prompt.Request
	Focus   int
}

// NewDialog creates a dialog focused on the request's cancel option.
func NewDialog(req prompt.Request) Dialog {
	d := Dialog{Request: req}
	for i, o := range req.Options {
		if o.Cancel {
			d.Focus = i
			break
		}
	}
	return d
}

// Update handles keys. The returned command yields a DialogResultMsg once
// the user has chosen.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	n := len(d.Request.Options)
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		if n > 0 {
			d.Focus = (d.Focus - 1 + n) % n
		}
	case "right", "l", "tab":
		if n > 0 {
			d.Focus = (d.Focus + 1) % n
		}
	case "enter":
		if d.Focus >= 0 && d.Focus < n {
			return d, d.answer(d.Request.Options[d.Focus].Label)
		}
	case "esc":
		return d, d.answer(d.Request.CancelLabel())
	case "y", "Y":
		if d.Request.Has(prompt.Yes) {
			return d, d.answer(prompt.Yes)
		}
	case "n", "N":
		if d.Request.Has(prompt.No) {
			return d, d.answer(prompt.No)
		}
	}
	return d, nil
}

func (d Dialog) answer(label string) tea.Cmd {
	id := d.Request.ID
	return func() tea.Msg { return DialogResultMsg{ID: id, Label: label} }
}

// View renders the dialog box.
func (d Dialog) View() string {
	buttons := make([]string, 0, len(d.Request.Options))
	for i, o := range d.Request.Options {
		style := theme.ButtonInactive
		if i == d.Focus {
			style = theme.ButtonActive
			if o.Destructive {
				style = theme.ButtonDestructive
			}
		}
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, style.Render(o.Label))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(d.Request.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(d.Request.Message))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, buttons...))

	return theme.Dialog.Render(b.String())
}
