package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list is replayed on each open.
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
	`CREATE TABLE IF NOT EXISTS users (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		plan_months INTEGER NOT NULL DEFAULT 12
		            CHECK(plan_months IN (2,6,12,24,36)),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS prompts (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		content    TEXT NOT NULL,
		origin     TEXT NOT NULL DEFAULT 'system'
		           CHECK(origin IN ('system','admin')),
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS answers (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		prompt_id  INTEGER NOT NULL REFERENCES prompts(id),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_answers_user_created ON answers(user_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_user_prompt ON answers(user_id, prompt_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS user_progress (
		user_id              TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		total_answers        INTEGER NOT NULL DEFAULT 0 CHECK(total_answers >= 0),
		consecutive_days     INTEGER NOT NULL DEFAULT 0 CHECK(consecutive_days >= 0),
		last_answered_date   TEXT,
		self_awareness_level INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS user_goals (
		id                       TEXT PRIMARY KEY,
		user_id                  TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		start_date               TEXT NOT NULL,
		end_date                 TEXT NOT NULL,
		ideal_person_description TEXT NOT NULL,
		created_at               TEXT NOT NULL,
		updated_at               TEXT NOT NULL,
		CHECK(end_date >= start_date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_user_goals_user ON user_goals(user_id, start_date, end_date)`,

	`CREATE TABLE IF NOT EXISTS ai_analysis (
		id                      TEXT PRIMARY KEY,
		user_id                 TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		answer_id               TEXT NOT NULL UNIQUE REFERENCES answers(id) ON DELETE CASCADE,
		strengths               TEXT NOT NULL DEFAULT '',
		weaknesses              TEXT NOT NULL DEFAULT '',
		values_summary          TEXT NOT NULL DEFAULT '',
		improvement_suggestions TEXT NOT NULL DEFAULT '',
		relationship_map        TEXT NOT NULL DEFAULT '{}',
		analyzed_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_ai_analysis_user ON ai_analysis(user_id, analyzed_at)`,
}
