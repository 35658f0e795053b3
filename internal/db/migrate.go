package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form; a re-run
			// reports the column as a duplicate.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS shared_prompts (
		id          TEXT PRIMARY KEY,
		prompt_text TEXT NOT NULL CHECK(length(trim(prompt_text)) > 0),
		author_name TEXT NOT NULL DEFAULT '',
		likes       INTEGER NOT NULL DEFAULT 0 CHECK(likes >= 0),
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_shared_prompts_rank ON shared_prompts(likes DESC, created_at DESC)`,

	`ALTER TABLE shared_prompts ADD COLUMN assignment_type TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_shared_prompts_type ON shared_prompts(assignment_type)`,

	`CREATE TABLE IF NOT EXISTS liked_prompts (
		prompt_id TEXT PRIMARY KEY,
		liked_at  TEXT NOT NULL
	)`,
}
