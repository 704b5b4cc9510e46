package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchInput wraps bubbles/textinput as a filter box.
type SearchInput struct {
	Model  textinput.Model
	active bool
}

// NewSearchInput creates an inactive search box.
func NewSearchInput(placeholder string, maxWidth int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return SearchInput{Model: ti}
}

// Activate focuses the box.
func (s *SearchInput) Activate() tea.Cmd {
	s.active = true
	return s.Model.Focus()
}

// Deactivate blurs the box. The query is kept.
func (s *SearchInput) Deactivate() {
	s.active = false
	s.Model.Blur()
}

// Clear empties and blurs the box.
func (s *SearchInput) Clear() {
	s.Model.SetValue("")
	s.Deactivate()
}

// Active reports whether the box has focus.
func (s SearchInput) Active() bool {
	return s.active
}

// Update forwards messages to the text input while active.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search box, or nothing when inactive and empty.
func (s SearchInput) View() string {
	if !s.active && s.Value() == "" {
		return ""
	}
	return s.Model.View()
}

// Value returns the query.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Matches reports whether text contains the query, ignoring case.
func (s SearchInput) Matches(text string) bool {
	q := strings.TrimSpace(s.Value())
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(q))
}
