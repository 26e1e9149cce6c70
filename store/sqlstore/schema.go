// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The SQL is kept to
// the dialect subset shared by sqlite and postgres.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed the single settings row with deployment defaults.
	_, err := db.Exec(`
		INSERT INTO setting (id, voting_open, hide_judges)
		VALUES (1, 1, 1)
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	return nil
}

const schema = `
-- Votes: arrival-ordered append log. Uniqueness per (judge, contestant)
-- is enforced by the scoring engine, not the table. seq is UNIQUE so two
-- sessions can never claim the same ledger position; Append retries on
-- the conflict.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    seq INTEGER NOT NULL UNIQUE,
    judge TEXT NOT NULL,
    contestant TEXT NOT NULL,
    score INTEGER NOT NULL,
    note TEXT,
    ts TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_pair ON vote(judge, contestant);
CREATE INDEX IF NOT EXISTS idx_vote_contestant ON vote(contestant);

-- Settings: one row, last write wins.
CREATE TABLE IF NOT EXISTS setting (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    voting_open INTEGER NOT NULL,
    hide_judges INTEGER NOT NULL
);

-- Contestants: normalized names, no removal.
CREATE TABLE IF NOT EXISTS contestant (
    name TEXT PRIMARY KEY
);
`
