package sqlite

import (
	"database/sql"
	"fmt"

	"samaritans-api/internal/auth/repository"
	"samaritans-api/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the auth domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/sqlite.%s", method)
}
