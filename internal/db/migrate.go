package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS journeys (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS stages (
		id          TEXT PRIMARY KEY,
		journey_id  TEXT NOT NULL REFERENCES journeys(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_stages_journey ON stages(journey_id)`,

	`CREATE TABLE IF NOT EXISTS steps (
		id          TEXT PRIMARY KEY,
		stage_id    TEXT NOT NULL REFERENCES stages(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'NOT_STARTED'
		            CHECK(status IN ('NOT_STARTED','IN_PROGRESS','COMPLETED')),
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_steps_stage ON steps(stage_id)`,
}
