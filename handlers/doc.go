// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Juryboard API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: login and session issuing
  - VoteHandler: score submission and vote detail views
  - BoardHandler: the ranked leaderboard
  - AdminHandler: roster, settings, and ledger maintenance

# Voting Flow

Judges authenticate once, then submit per-contestant scores:

	POST /login        → Login (returns bearer token)
	POST /votes        → Submit (insert or update per (judge, contestant))
	GET  /votes/mine   → Mine (own submissions)

A resubmission for the same contestant updates the existing record in
place; the ledger never holds two votes for one (judge, contestant)
pair.

# Public Views

	GET /leaderboard → ranked board, always public
	GET /votes       → detail view, judge attribution masked per role
	GET /contestants → roster
	GET /settings    → current toggles

# Admin Operations

All require an admin session:

	POST   /contestants              → AddContestant
	PUT    /settings                 → UpdateSettings
	DELETE /votes                    → DeleteVotes (by id list)
	DELETE /contestants/{name}/votes → DeleteContestantVotes
	DELETE /votes/last               → UndoLastVote
	DELETE /votes/all                → ClearVotes
	POST   /reset                    → Reset

# Error Mapping

Core error kinds map onto HTTP statuses: invalid score or unknown
contestant 400, missing permission 403, voting closed 409, storage
unavailable 503. Stale delete targets are counted as zero, not errors.
*/
package handlers
