package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

const (
	historyTable    = "history_records"
	llmRequestTable = "llm_request_events"
)

// Rows get a rowid sequence so records created in the same instant still
// list in insertion order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ` + historyTable + ` (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		level INTEGER NOT NULL,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ` + llmRequestTable + ` (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		input_tokens INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		success BOOLEAN NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS history_records_created_at ON ` + historyTable + ` (created_at)`,
}

// migrate creates missing tables and indexes. Columns are never altered.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, query := range migrations {
		if err := drv.Exec(ctx, query, []any{}, nil); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
