// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sqlstore is the SQL storage backend, serving both sqlite and
postgres through one database/sql adapter.

# Schema Creation

CreateSchema initializes all required tables:

	if err := sqlstore.CreateSchema(db); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables. New
also calls it, so callers normally just hand New an opened *sql.DB.

# Tables

  - vote: the ledger; a UNIQUE seq column preserves arrival order,
    claimed under ON CONFLICT with retry so no two rows share a position
  - setting: single row holding voting_open and hide_judges
  - contestant: the roster

# Dialect notes

All statements stick to the subset both drivers accept: $1 placeholders,
INTEGER for booleans, ON CONFLICT DO NOTHING for the settings seed.
Driver errors are wrapped as store.ErrUnavailable.
*/
package sqlstore
