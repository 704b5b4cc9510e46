package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// historyRepo implements HistoryRepo with the ent SQL builder.
type historyRepo struct {
	store *Store
}

func (r *historyRepo) Add(ctx context.Context, rec HistoryRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(historyTable).
		Columns("id", "title", "level", "score", "total_questions", "created_at").
		Values(rec.ID, rec.Title, rec.Level, rec.Score, rec.TotalQuestions, rec.CreatedAt.UnixNano()).
		Query()

	if _, err := r.store.exec(ctx, query, args); err != nil {
		return fmt.Errorf("save history record: %w", err)
	}
	return nil
}

func (r *historyRepo) All(ctx context.Context) ([]HistoryRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "title", "level", "score", "total_questions", "created_at").
		From(entsql.Table(historyTable)).
		OrderBy(entsql.Desc("created_at"), entsql.Desc("seq")).
		Query()

	var rows entsql.Rows
	if err := r.store.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []HistoryRecord
	for rows.Next() {
		var (
			rec     HistoryRecord
			created int64
		)
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Level, &rec.Score, &rec.TotalQuestions, &created); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		rec.CreatedAt = time.Unix(0, created)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (r *historyRepo) Remove(ctx context.Context, id string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(historyTable).
		Where(entsql.EQ("id", id)).
		Query()

	res, err := r.store.exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("remove history record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove history record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("remove %s: %w", id, ErrRecordNotFound)
	}
	return nil
}
