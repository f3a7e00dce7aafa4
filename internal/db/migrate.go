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
	`CREATE TABLE IF NOT EXISTS swim_sessions (
		id           TEXT PRIMARY KEY,
		session_date TEXT NOT NULL,
		type         TEXT NOT NULL CHECK(type IN ('pool','open_water')),
		distance_m   INTEGER NOT NULL CHECK(distance_m > 0),
		duration_min INTEGER NOT NULL DEFAULT 0 CHECK(duration_min >= 0),
		effort       TEXT CHECK(effort IS NULL OR effort IN ('easy','moderate','hard')),
		rpe          INTEGER CHECK(rpe IS NULL OR (rpe BETWEEN 1 AND 10)),
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_swim_sessions_date ON swim_sessions(session_date)`,

	// Conditions arrived after the first release.
	`ALTER TABLE swim_sessions ADD COLUMN conditions TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS athlete_profile (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		goal               TEXT NOT NULL,
		target_time        TEXT NOT NULL DEFAULT '',
		weekly_volume_m    INTEGER NOT NULL DEFAULT 0,
		longest_swim_json  TEXT NOT NULL DEFAULT '{}',
		access_pool        INTEGER NOT NULL DEFAULT 1,
		access_open_water  INTEGER NOT NULL DEFAULT 0,
		tone               TEXT NOT NULL DEFAULT 'neutral',
		availability_json  TEXT NOT NULL DEFAULT '{}',
		event_json         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS session_plans (
		id           TEXT PRIMARY KEY,
		parent_id    TEXT REFERENCES session_plans(id) ON DELETE SET NULL,
		generation   INTEGER NOT NULL DEFAULT 0,
		operation    TEXT NOT NULL CHECK(operation IN ('generate','adapt','scale')),
		plan_date    TEXT NOT NULL,
		session_type TEXT NOT NULL,
		template_id  TEXT NOT NULL,
		body_json    TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_plans_parent ON session_plans(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_session_plans_date ON session_plans(plan_date)`,
}
