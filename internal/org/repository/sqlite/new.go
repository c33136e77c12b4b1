package sqlite

import (
	"database/sql"
	"fmt"

	"missionmind/internal/org/repository"
	"missionmind/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the org domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("org/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("org/repository/sqlite.%s", method)
}
