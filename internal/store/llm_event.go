package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo.
type eventRepo struct {
	store *Store
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(llmRequestTable).
		Columns("provider", "model", "purpose", "input_tokens", "output_tokens",
			"latency_ms", "success", "error_message", "created_at").
		Values(data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
			data.LatencyMs, data.Success, data.ErrorMessage, time.Now().UnixNano()).
		Query()

	if _, err := r.store.exec(ctx, query, args); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMRequestCount(ctx context.Context) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*")).
		From(entsql.Table(llmRequestTable)).
		Query()

	var rows entsql.Rows
	if err := r.store.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count LLM requests: %w", err)
	}
	defer rows.Close()

	n, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("count LLM requests: %w", err)
	}
	return n, nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsage, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("purpose", "model", entsql.Count("*"),
			entsql.Sum("input_tokens"), entsql.Sum("output_tokens")).
		AppendSelectExpr(entsql.Expr("SUM(1 - success)")).
		From(entsql.Table(llmRequestTable)).
		GroupBy("purpose", "model").
		OrderBy("purpose", "model").
		Query()

	var rows entsql.Rows
	if err := r.store.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Purpose, &u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.Failures); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
