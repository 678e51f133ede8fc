package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are run in order on every startup. Statements must stay
// re-runnable: new tables use IF NOT EXISTS, and column additions rely on
// the duplicate-column tolerance in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		email      TEXT PRIMARY KEY,
		password   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	// The single sign-in slot. One row, holding whoever is logged in.
	`CREATE TABLE IF NOT EXISTS auth_session (
		id    INTEGER PRIMARY KEY CHECK (id = 1),
		email TEXT NOT NULL REFERENCES users(email) ON DELETE CASCADE
	)`,

	// The per-user state document: full settings object plus the full
	// project list as one JSON document. Field additions across product
	// iterations are tolerated by defaulting absent fields at read time.
	`CREATE TABLE IF NOT EXISTS user_state (
		email      TEXT PRIMARY KEY REFERENCES users(email) ON DELETE CASCADE,
		doc        TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
