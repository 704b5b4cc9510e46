// Package history records finished quiz attempts.
package history

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/session"
	"github.com/abhisek/quizcard/internal/store"
)

// PersistError is returned when a finished attempt could not be saved.
// The attempt itself is still complete.
type PersistError struct {
	RecordID string
	Err      error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist history record %s: %v", e.RecordID, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Recorder turns completion events into history records.
type Recorder struct {
	repo  store.HistoryRepo
	warn  func(error)
	now   func() time.Time
	newID func() (uuid.UUID, error)
}

var _ session.CompletionHandler = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithWarn sets the callback that receives persist failures.
func WithWarn(fn func(error)) Option {
	return func(r *Recorder) { r.warn = fn }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// NewRecorder creates a Recorder writing to repo. Failures are reported to
// stderr unless WithWarn is given.
func NewRecorder(repo store.HistoryRepo, opts ...Option) *Recorder {
	r := &Recorder{
		repo:  repo,
		warn:  warnStderr,
		now:   time.Now,
		newID: uuid.NewV7,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func warnStderr(err error) {
	fmt.Fprintf(os.Stderr, "warning: %v\n", err)
}

// NewRecord builds the record for a finished attempt.
func (r *Recorder) NewRecord(ev session.Completed) (store.HistoryRecord, error) {
	id, err := r.newID()
	if err != nil {
		return store.HistoryRecord{}, fmt.Errorf("generate record id: %w", err)
	}
	return store.HistoryRecord{
		ID:             id.String(),
		Title:          ev.Quiz.Title,
		Level:          int(ev.Quiz.Level),
		Score:          ev.Score,
		TotalQuestions: ev.TotalQuestions,
		CreatedAt:      r.now(),
	}, nil
}

// SessionCompleted implements session.CompletionHandler.
func (r *Recorder) SessionCompleted(ctx context.Context, ev session.Completed) error {
	rec, err := r.NewRecord(ev)
	if err == nil {
		err = r.repo.Add(ctx, rec)
	}
	if err != nil {
		perr := &PersistError{RecordID: rec.ID, Err: err}
		if r.warn != nil {
			r.warn(perr)
		}
		return perr
	}
	return nil
}

// LevelOf returns the catalog level stored in rec.
func LevelOf(rec store.HistoryRecord) catalog.Level {
	return catalog.Level(rec.Level)
}
