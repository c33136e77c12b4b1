package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the SQLite database at path and verifies
// the connection. The parent directory is created when missing.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve db path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure db dir: %w", err)
	}

	db, err := sql.Open("sqlite", absPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Single writer; the modernc driver serializes writes anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return db, nil
}

// EnsureSchema creates all application tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS org_units (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	echelon TEXT NOT NULL,
	parent_id TEXT NOT NULL DEFAULT '',
	active INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_org_units_parent ON org_units(parent_id);

CREATE TABLE IF NOT EXISTS authorities (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	org_unit_id TEXT NOT NULL,
	grade TEXT NOT NULL,
	scope TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_authorities_org ON authorities(org_unit_id);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	classification TEXT NOT NULL,
	suspense_date TEXT NOT NULL,
	originator TEXT NOT NULL,
	org_unit_id TEXT NOT NULL,
	priority_score REAL NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'draft',
	record_series_id TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_org ON tasks(org_unit_id);
CREATE INDEX IF NOT EXISTS idx_tasks_suspense ON tasks(suspense_date);

CREATE TABLE IF NOT EXISTS assignments (
	id TEXT PRIMARY KEY,
	task_id TEXT NOT NULL,
	assignee_type TEXT NOT NULL,
	assignee_id TEXT NOT NULL,
	role TEXT NOT NULL,
	due_override_date TEXT,
	state TEXT NOT NULL DEFAULT 'pending',
	rationale TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assignments_task ON assignments(task_id);

CREATE TABLE IF NOT EXISTS comments (
	id TEXT PRIMARY KEY,
	task_id TEXT NOT NULL,
	author_user_id TEXT NOT NULL,
	body TEXT NOT NULL,
	parent_comment_id TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_comments_task ON comments(task_id);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
