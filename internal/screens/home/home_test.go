package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/store"
)

type stubRepo struct {
	records []store.HistoryRecord
}

func (r *stubRepo) Add(context.Context, store.HistoryRecord) error { return nil }
func (r *stubRepo) All(context.Context) ([]store.HistoryRecord, error) {
	return r.records, nil
}
func (r *stubRepo) Remove(context.Context, string) error { return nil }

func testHome(t *testing.T) *HomeScreen {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return New(cat, &stubRepo{records: []store.HistoryRecord{
		{ID: "1", Title: "Go Basics", Level: 1, Score: 3, TotalQuestions: 4},
	}})
}

func TestHomeScreen_ListsAllQuizzes(t *testing.T) {
	h := testHome(t)
	cat, _ := catalog.Default()
	if got, want := len(h.Visible()), len(cat.All()); got != want {
		t.Errorf("visible = %d, want %d", got, want)
	}
}

func TestHomeScreen_TabFiltersByLevel(t *testing.T) {
	h := testHome(t)
	cat, _ := catalog.Default()

	h.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if got, want := len(h.Visible()), len(cat.ByLevel(catalog.LevelEasy)); got != want {
		t.Errorf("easy visible = %d, want %d", got, want)
	}
}

func TestHomeScreen_EnterNavigatesToQuiz(t *testing.T) {
	h := testHome(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	nav, ok := cmd().(router.NavigateMsg)
	if !ok || nav.Route != QuizRoute || nav.Params["id"] == "" {
		t.Errorf("unexpected msg %#v", nav)
	}
}

func TestHomeScreen_HistoryKey(t *testing.T) {
	h := testHome(t)
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	if nav, ok := cmd().(router.NavigateMsg); !ok || nav.Route != HistoryRoute {
		t.Errorf("unexpected msg %#v", nav)
	}
}

func TestHomeScreen_LastResult(t *testing.T) {
	h := testHome(t)
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	h.Update(cmd())
	if h.last == nil || h.last.Title != "Go Basics" {
		t.Errorf("last = %+v", h.last)
	}
	if h.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
}

func TestHomeScreen_SearchNoMatch(t *testing.T) {
	h := testHome(t)
	h.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !h.search.Active() {
		t.Fatal("expected search active")
	}
	h.search.Model.SetValue("zzzz")
	h.rebuild()
	if len(h.Visible()) != 0 {
		t.Errorf("visible = %v, want none", h.Visible())
	}

	h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if h.search.Active() || len(h.Visible()) == 0 {
		t.Error("esc should clear the search")
	}
}
