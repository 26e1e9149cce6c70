// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: username, password
  - SubmitVoteRequest: contestant, score, note
  - AddContestantRequest: name
  - UpdateSettingsRequest: voting_open, hide_judges_from_viewers
  - DeleteVotesRequest: ids

# Response Types

Types for JSON responses:

  - LoginResponse: token, username, display_name, role
  - SubmitVoteResponse: vote_id, updated, message
  - AddContestantResponse: name, added
  - DeleteVotesResponse: deleted
  - UndoVoteResponse: removed
  - LeaderboardResponse: rows, winner
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Vote: one ledger record, unique per (judge, contestant)
  - Settings: voting-open and judge-visibility toggles
  - LeaderboardRow: one ranked aggregate entry

# Constants

Viewer roles:

	RoleAnonymous = "anonymous"
	RoleJudge     = "judge"
	RoleAdmin     = "admin"

Judge masking:

	MaskedJudge = "jury"
*/
package models
