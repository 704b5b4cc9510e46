package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/components"
	"github.com/abhisek/quizcard/internal/ui/layout"
	"github.com/abhisek/quizcard/internal/ui/theme"
)

// Route names used by the home screen.
const (
	QuizRoute    = "quiz"
	HistoryRoute = "history"
)

type lastResultMsg struct {
	Record *store.HistoryRecord
	Err    error
}

// HomeScreen lists quizzes with a level filter and a title search.
type HomeScreen struct {
	catalog catalog.Catalog
	history store.HistoryRepo

	chips  components.LevelChips
	search components.SearchInput
	menu   components.Menu
	last   *store.HistoryRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen. history may be nil.
func New(cat catalog.Catalog, history store.HistoryRepo) *HomeScreen {
	h := &HomeScreen{
		catalog: cat,
		history: history,
		search:  components.NewSearchInput("search quizzes", 40),
	}
	h.rebuild()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLast()
}

// Refresh reloads the last result when the user comes back from a quiz.
func (h *HomeScreen) Refresh() tea.Cmd {
	return h.loadLast()
}

func (h *HomeScreen) loadLast() tea.Cmd {
	if h.history == nil {
		return nil
	}
	repo := h.history
	return func() tea.Msg {
		recs, err := repo.All(context.Background())
		if err != nil || len(recs) == 0 {
			return lastResultMsg{Err: err}
		}
		return lastResultMsg{Record: &recs[0]}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.search.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Tab", Description: "Level"},
		{Key: "/", Description: "Search"},
		{Key: "H", Description: "History"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lastResultMsg:
		h.last = msg.Record
		return h, nil

	case tea.KeyMsg:
		if h.search.Active() {
			return h.updateSearch(msg)
		}
		switch msg.String() {
		case "tab":
			h.chips.Next()
			h.rebuild()
			return h, nil
		case "/":
			return h, h.search.Activate()
		case "h":
			return h, navigate(HistoryRoute, nil)
		case "q":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateSearch(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		h.search.Deactivate()
		return h, nil
	case "esc":
		h.search.Clear()
		h.rebuild()
		return h, nil
	}
	var cmd tea.Cmd
	h.search, cmd = h.search.Update(msg)
	h.rebuild()
	return h, cmd
}

// rebuild recomputes the quiz list from the filters.
func (h *HomeScreen) rebuild() {
	var items []components.MenuItem
	for _, q := range h.catalog.All() {
		if !h.chips.Allows(q.Level) || !h.search.Matches(q.Title) {
			continue
		}
		id := q.ID
		items = append(items, components.MenuItem{
			Label:  q.Title,
			Detail: fmt.Sprintf("%s · %d questions", q.Level, len(q.Questions)),
			Action: func() tea.Cmd {
				return navigate(QuizRoute, map[string]string{"id": id})
			},
		})
	}
	h.menu.SetItems(items)
}

// Visible returns the titles currently listed.
func (h *HomeScreen) Visible() []string {
	titles := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		titles[i] = item.Label
	}
	return titles
}

func navigate(route string, params map[string]string) tea.Cmd {
	return func() tea.Msg { return router.NavigateMsg{Route: route, Params: params} }
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := components.ContentWidth(width)

	sections := []string{
		renderBanner(cw, compact),
		renderLastResult(h.last, cw),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, h.chips.View()),
	}
	if v := h.search.View(); v != "" {
		sections = append(sections, v)
	}

	list := h.menu.View()
	if len(h.menu.Items) == 0 {
		list = theme.Hint.Render("    No quizzes match")
	}
	sections = append(sections, lipgloss.NewStyle().Width(cw).Render(list))

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}
