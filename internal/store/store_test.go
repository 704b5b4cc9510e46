package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Driver() == nil {
		t.Fatal("expected non-nil ent driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDBUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizcard.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{historyTable, llmRequestTable} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizcard.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		var name string
		err = s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='index' AND name='history_records_created_at'",
		).Scan(&name)
		if err != nil {
			t.Errorf("index after open #%d: %v", i+1, err)
		}
		s.Close()
	}
}

func TestHistoryAddAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	recs, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all (empty): %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}

	base := time.Now().Truncate(time.Millisecond)
	for i, id := range []string{"a", "b", "c"} {
		err := repo.Add(ctx, HistoryRecord{
			ID:             id,
			Title:          "Quiz " + id,
			Level:          i + 1,
			Score:          i,
			TotalQuestions: 3,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	recs, err = repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	if recs[0].ID != "c" || recs[2].ID != "a" {
		t.Errorf("order = %s,%s,%s, want c,b,a", recs[0].ID, recs[1].ID, recs[2].ID)
	}
	if recs[0].Level != 3 || recs[0].Score != 2 || recs[0].TotalQuestions != 3 {
		t.Errorf("record c = %+v", recs[0])
	}
	if !recs[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("created_at = %v, want %v", recs[0].CreatedAt, base.Add(2*time.Minute))
	}
}

func TestHistorySameInstantKeepsInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	now := time.Now()
	for _, id := range []string{"first", "second"} {
		if err := repo.Add(ctx, HistoryRecord{ID: id, Title: id, Level: 1, CreatedAt: now}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	recs, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].ID != "second" || recs[1].ID != "first" {
		t.Errorf("order = %s,%s, want second,first", recs[0].ID, recs[1].ID)
	}
	if !recs[0].CreatedAt.Equal(recs[1].CreatedAt) {
		t.Errorf("created_at differ: %v vs %v", recs[0].CreatedAt, recs[1].CreatedAt)
	}
}

func TestHistoryDuplicateID(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	rec := HistoryRecord{ID: "dup", Title: "t", Level: 1}
	if err := repo.Add(ctx, rec); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(ctx, rec); err == nil {
		t.Fatal("expected error on duplicate id")
	}
}

func TestHistoryRemove(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	if err := repo.Add(ctx, HistoryRecord{ID: "x", Title: "t", Level: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Remove(ctx, "x"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	err := repo.Remove(ctx, "x")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("second remove error = %v, want ErrRecordNotFound", err)
	}

	recs, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("len = %d, want 0", len(recs))
	}
}

func TestHistoryConcurrentAdds(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	ids := []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"}
	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			errs <- repo.Add(ctx, HistoryRecord{ID: id, Title: id, Level: 1})
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("add: %v", err)
		}
	}

	recs, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(recs) != len(ids) {
		t.Errorf("len = %d, want %d", len(recs), len(ids))
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-1",
		Purpose:      "quiz-authoring",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    42,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := repo.LLMRequestCount(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, ev := range []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-authoring", InputTokens: 10, OutputTokens: 20, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-authoring", InputTokens: 5, OutputTokens: 0, ErrorMessage: "boom"},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "quiz-authoring", InputTokens: 1, OutputTokens: 2, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("groups = %d, want 2: %+v", len(usage), usage)
	}
	want := LLMUsage{Purpose: "quiz-authoring", Model: "gpt-4o-mini", Calls: 2, InputTokens: 15, OutputTokens: 20, Failures: 1}
	if usage[1] != want {
		t.Errorf("usage[1] = %+v, want %+v", usage[1], want)
	}
	if usage[0].Model != "gemini-2.0-flash" || usage[0].Failures != 0 {
		t.Errorf("usage[0] = %+v", usage[0])
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "sub", "x.db")
	t.Setenv("QUIZCARD_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUIZCARD_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if want := filepath.Join(dir, "quizcard", "quizcard.db"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
