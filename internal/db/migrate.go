package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must stay
// idempotent; ALTER TABLE additions rely on the duplicate-column tolerance
// in Migrate.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id                     TEXT PRIMARY KEY,
		schema_version         INTEGER NOT NULL,
		created_at             TEXT NOT NULL,
		created_stamp          TEXT NOT NULL,
		fingerprint            TEXT NOT NULL,
		app_version            TEXT NOT NULL,
		role                   TEXT NOT NULL DEFAULT '',
		years_experience       TEXT NOT NULL DEFAULT '',
		fatigue_status         TEXT NOT NULL DEFAULT '',
		tool_id                TEXT NOT NULL DEFAULT '',
		onboarding_complete    INTEGER NOT NULL DEFAULT 0,
		phase                  TEXT NOT NULL
		                       CHECK(phase IN ('onboarding','in_case','survey_pending','washout_pending','complete')),
		queue                  TEXT NOT NULL DEFAULT '[]',
		cursor                 INTEGER NOT NULL DEFAULT 0,
		card_started_at        TEXT,
		revealed               TEXT NOT NULL DEFAULT '[]',
		accumulated_cost_ms    INTEGER NOT NULL DEFAULT 0,
		washout_started_at     TEXT,
		last_finished_scenario TEXT NOT NULL DEFAULT '',
		log_path               TEXT NOT NULL DEFAULT '',
		updated_at             TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_fingerprint ON sessions(fingerprint)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
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
