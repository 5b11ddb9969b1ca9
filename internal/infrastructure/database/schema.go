package database

import (
	"context"
	"fmt"
)

// Schema bootstrap. Statements are idempotent so startup can run them every
// time without a separate migration step.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT,
		birth_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id               BIGSERIAL PRIMARY KEY,
		title            TEXT,
		description      TEXT,
		publication_date DATE,
		price            NUMERIC(21, 2),
		author_id        BIGINT REFERENCES authors (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id)`,
}

// Migrate creates the tables if they do not exist yet.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}
	return nil
}
