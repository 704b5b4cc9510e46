package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/session"
	"github.com/abhisek/quizcard/internal/store"
)

type memRepo struct {
	added []store.HistoryRecord
	err   error
}

func (m *memRepo) Add(_ context.Context, rec store.HistoryRecord) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, rec)
	return nil
}

func (m *memRepo) All(context.Context) ([]store.HistoryRecord, error) {
	return m.added, nil
}

func (m *memRepo) Remove(context.Context, string) error {
	return store.ErrRecordNotFound
}

func completed() session.Completed {
	return session.Completed{
		Quiz: catalog.Quiz{
			ID:    "go-basics",
			Title: "Go Basics",
			Level: catalog.LevelMedium,
		},
		Score:          1,
		TotalQuestions: 2,
	}
}

func TestSessionCompleted_Records(t *testing.T) {
	repo := &memRepo{}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r := NewRecorder(repo, WithClock(func() time.Time { return now }))

	require.NoError(t, r.SessionCompleted(context.Background(), completed()))
	require.Len(t, repo.added, 1)

	rec := repo.added[0]
	assert.Equal(t, "Go Basics", rec.Title)
	assert.Equal(t, catalog.LevelMedium, LevelOf(rec))
	assert.Equal(t, 1, rec.Score)
	assert.Equal(t, 2, rec.TotalQuestions)
	assert.Equal(t, now, rec.CreatedAt)

	id, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestSessionCompleted_UniqueIDs(t *testing.T) {
	repo := &memRepo{}
	r := NewRecorder(repo)

	for i := 0; i < 3; i++ {
		require.NoError(t, r.SessionCompleted(context.Background(), completed()))
	}
	seen := map[string]bool{}
	for _, rec := range repo.added {
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestSessionCompleted_PersistFailure(t *testing.T) {
	cause := errors.New("database is locked")
	repo := &memRepo{err: cause}

	var warned []error
	r := NewRecorder(repo, WithWarn(func(err error) { warned = append(warned, err) }))

	err := r.SessionCompleted(context.Background(), completed())
	var perr *PersistError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, cause)
	assert.NotEmpty(t, perr.RecordID)
	require.Len(t, warned, 1)
	assert.Equal(t, err, warned[0])
}

func TestRecorderWithSQLiteStore(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	r := NewRecorder(s.HistoryRepo())
	require.NoError(t, r.SessionCompleted(context.Background(), completed()))

	recs, err := s.HistoryRepo().All(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].Score)
}
