package history

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcard/internal/prompt"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/components"
)

type memRepo struct {
	records []store.HistoryRecord
}

func (r *memRepo) Add(_ context.Context, rec store.HistoryRecord) error {
	r.records = append([]store.HistoryRecord{rec}, r.records...)
	return nil
}

func (r *memRepo) All(context.Context) ([]store.HistoryRecord, error) {
	return slices.Clone(r.records), nil
}

func (r *memRepo) Remove(_ context.Context, id string) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = slices.Delete(r.records, i, i+1)
			return nil
		}
	}
	return store.ErrRecordNotFound
}

func loaded(t *testing.T) (*HistoryScreen, *memRepo) {
	t.Helper()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := &memRepo{records: []store.HistoryRecord{
		{ID: "b", Title: "Concurrency", Level: 3, Score: 1, TotalQuestions: 5, CreatedAt: now},
		{ID: "a", Title: "Go Basics", Level: 1, Score: 4, TotalQuestions: 4, CreatedAt: now.Add(-time.Hour)},
	}}
	s := New(repo)
	s.Update(s.Init()())
	return s, repo
}

func press(s *HistoryScreen, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		msg = tea.KeyPressMsg{Code: tea.KeyLeft}
	default:
		msg = tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
	_, cmd := s.Update(msg)
	return cmd
}

func TestHistoryScreen_ListsRecords(t *testing.T) {
	s, _ := loaded(t)
	if len(s.Records()) != 2 {
		t.Fatalf("records = %d, want 2", len(s.Records()))
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Concurrency") || !strings.Contains(view, "4/4") {
		t.Errorf("view missing records:\n%s", view)
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&memRepo{})
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 30), "No quizzes taken yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_RemoveConfirmed(t *testing.T) {
	s, repo := loaded(t)
	press(s, "down")
	press(s, "d")
	if s.dialog == nil {
		t.Fatal("expected remove dialog")
	}

	// Focus starts on No; move to Yes.
	press(s, "left")
	cmd := press(s, "enter")
	result := cmd()
	if r, ok := result.(components.DialogResultMsg); !ok || r.ID != prompt.Remove || r.Label != prompt.Yes {
		t.Fatalf("unexpected dialog result %#v", result)
	}

	_, cmd = s.Update(result)
	removed := cmd()
	_, cmd = s.Update(removed)
	s.Update(cmd())

	if len(repo.records) != 1 || repo.records[0].ID != "b" {
		t.Errorf("repo = %+v, want only b", repo.records)
	}
	if len(s.Records()) != 1 {
		t.Errorf("screen records = %d, want 1", len(s.Records()))
	}
}

func TestHistoryScreen_RemoveDeclined(t *testing.T) {
	s, repo := loaded(t)
	press(s, "d")
	cmd := press(s, "esc")
	_, cmd = s.Update(cmd())
	if cmd != nil {
		t.Error("declined removal should not touch the store")
	}
	if s.dialog != nil || len(repo.records) != 2 {
		t.Error("expected dialog dismissed and records kept")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s, _ := loaded(t)
	cmd := press(s, "esc")
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
