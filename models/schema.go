package models

import (
	"fmt"

	"gorm.io/gorm"
)

// The DDL matches the table the site has been writing to since launch,
// including the year check bound of 100000 (validation caps input at 99999;
// the looser constraint is kept so the schema stays byte-compatible with
// existing deployments).
var ensureStatements = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		id BIGSERIAL PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		character TEXT NOT NULL DEFAULT 'Deniusth',
		username TEXT NOT NULL,
		cause TEXT NOT NULL,
		probability INT NOT NULL CHECK (probability >= 0 AND probability <= 100),
		era TEXT NOT NULL DEFAULT 'AF',
		year INT CHECK (year BETWEEN 0 AND 100000),
		month_index INT NOT NULL CHECK (month_index BETWEEN 1 AND 16),
		month_name TEXT NOT NULL,
		day_of_month INT NOT NULL CHECK (day_of_month BETWEEN 1 AND 32),
		day_of_week_index INT NOT NULL CHECK (day_of_week_index BETWEEN 1 AND 8),
		day_of_week_name TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_character ON submissions(character)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_month ON submissions(month_index)`,
	`CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at DESC)`,
}

// EnsureSchema creates the submissions table and its indexes if absent.
// Idempotent; run once at startup rather than per request.
func EnsureSchema(db *gorm.DB) error {
	for _, stmt := range ensureStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
