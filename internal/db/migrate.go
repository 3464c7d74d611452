package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// focus_sessions.category_id deliberately has no foreign key: sessions may
// outlive their category when written through the bulk import path.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL CHECK(length(trim(name)) > 0),
		color      TEXT NOT NULL,
		seq        INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id              TEXT PRIMARY KEY,
		category_id     TEXT NOT NULL,
		title           TEXT NOT NULL CHECK(length(trim(title)) > 0),
		minutes_focused INTEGER NOT NULL CHECK(minutes_focused > 0),
		status          TEXT NOT NULL CHECK(status IN ('done','failed')),
		date_iso        TEXT NOT NULL,
		seq             INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_category ON focus_sessions(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_date ON focus_sessions(date_iso)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
