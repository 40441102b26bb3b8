package db

import (
	"database/sql"
	"fmt"
	"strings"
)

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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS blocks (
		id          TEXT PRIMARY KEY,
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT 'ligero'
		            CHECK(type IN ('profundo','ligero')),
		planned_min INTEGER NOT NULL DEFAULT 0,
		actual_min  INTEGER,
		interrupted INTEGER NOT NULL DEFAULT 0,
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_blocks_start ON blocks(start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_blocks_category ON blocks(category)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		category     TEXT NOT NULL DEFAULT '',
		due_date     TEXT,
		completed_at TEXT,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks(category)`,

	`CREATE TABLE IF NOT EXISTS checkins (
		date   TEXT PRIMARY KEY,
		mood   INTEGER NOT NULL,
		energy INTEGER NOT NULL,
		stress INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completion_feedback (
		id           TEXT PRIMARY KEY,
		block_id     TEXT NOT NULL DEFAULT '',
		task_id      TEXT NOT NULL DEFAULT '',
		feeling      INTEGER NOT NULL CHECK(feeling BETWEEN 1 AND 5),
		note         TEXT NOT NULL DEFAULT '',
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_feedback_block ON completion_feedback(block_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_task ON completion_feedback(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_completed ON completion_feedback(completed_at)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                       TEXT PRIMARY KEY DEFAULT 'default',
		daily_reflection_enabled INTEGER NOT NULL DEFAULT 1
	)`,

	// Seed default settings
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	// Planning sessions are persisted as one JSON document per session.
	// The engine replaces the whole document on every step.
	`CREATE TABLE IF NOT EXISTS planning_sessions (
		id         TEXT PRIMARY KEY,
		stage      TEXT NOT NULL,
		document   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_planning_sessions_stage ON planning_sessions(stage)`,
}
