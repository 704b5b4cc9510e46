package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/prompt"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/components"
	"github.com/abhisek/quizcard/internal/ui/layout"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []store.HistoryRecord
	Err     error
}

type recordRemovedMsg struct {
	ID  string
	Err error
}

// HistoryScreen lists past attempts, most recent first.
type HistoryScreen struct {
	repo     store.HistoryRepo
	records  []store.HistoryRecord
	selected int
	loaded   bool
	errMsg   string

	dialog  *components.Dialog
	pending string // id of the record awaiting removal confirmation
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.Refresher = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.HistoryRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

// Refresh reloads the records.
func (s *HistoryScreen) Refresh() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		recs, err := repo.All(context.Background())
		return historyLoadedMsg{Records: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.dialog != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "D", Description: "Remove"},
		{Key: "Esc", Description: "Back"},
	}
}

// Records returns the records currently shown.
func (s *HistoryScreen) Records() []store.HistoryRecord {
	return s.records
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.records = msg.Records
			if s.selected >= len(s.records) {
				s.selected = max(len(s.records)-1, 0)
			}
		}
		s.loaded = true
		return s, nil

	case recordRemovedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case components.DialogResultMsg:
		return s, s.resolve(msg)
	}

	if s.dialog != nil {
		var cmd tea.Cmd
		*s.dialog, cmd = s.dialog.Update(msg)
		return s, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "d", "delete":
			if s.selected < len(s.records) {
				s.pending = s.records[s.selected].ID
				d := components.NewDialog(prompt.RemoveRecord())
				s.dialog = &d
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) resolve(msg components.DialogResultMsg) tea.Cmd {
	if msg.ID != prompt.Remove || s.dialog == nil {
		return nil
	}
	id := s.pending
	s.dialog = nil
	s.pending = ""
	if !prompt.Accepted(msg.Label) {
		return nil
	}
	repo := s.repo
	return func() tea.Msg {
		return recordRemovedMsg{ID: id, Err: repo.Remove(context.Background(), id)}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.dialog != nil {
		return layout.Center(s.dialog.View(), width, height)
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes taken yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-28s  %-6s  %d/%d",
			prefix, rec.CreatedAt.Format("Jan 02, 2006 15:04"), rec.Title,
			catalog.Level(rec.Level), rec.Score, rec.TotalQuestions)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
