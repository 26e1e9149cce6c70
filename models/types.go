package models

import (
	"encoding/json"
	"time"
)

// Viewer roles
const (
	RoleAnonymous = "anonymous"
	RoleJudge     = "judge"
	RoleAdmin     = "admin"
)

// MaskedJudge replaces the judge attribution on vote details served to
// viewers who are not allowed to see it.
const MaskedJudge = "jury"

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Score is a json.Number so that fractional or non-numeric submissions
// are rejected as invalid scores instead of failing opaquely at decode.
type SubmitVoteRequest struct {
	Contestant string      `json:"contestant"`
	Score      json.Number `json:"score"`
	Note       string      `json:"note,omitempty"`
}

type AddContestantRequest struct {
	Name string `json:"name"`
}

type UpdateSettingsRequest struct {
	VotingOpen *bool `json:"voting_open,omitempty"`
	HideJudges *bool `json:"hide_judges_from_viewers,omitempty"`
}

type DeleteVotesRequest struct {
	IDs []string `json:"ids"`
}

// Response types

type LoginResponse struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type SubmitVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Updated bool   `json:"updated"`
	Message string `json:"message"`
}

type AddContestantResponse struct {
	Name  string `json:"name"`
	Added bool   `json:"added"`
}

type DeleteVotesResponse struct {
	Deleted int `json:"deleted"`
}

type UndoVoteResponse struct {
	Removed bool `json:"removed"`
}

type LeaderboardResponse struct {
	Rows   []LeaderboardRow `json:"rows"`
	Winner *LeaderboardRow  `json:"winner,omitempty"`
}

// Domain types

// Vote is one ledger record. At most one exists per (judge, contestant)
// pair; resubmission updates score and timestamp in place.
type Vote struct {
	ID         string    `json:"id"`
	Judge      string    `json:"judge"`
	Contestant string    `json:"contestant"`
	Score      int       `json:"score"`
	Note       string    `json:"note,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Settings gates submissions and judge visibility. Last write wins.
type Settings struct {
	VotingOpen bool `json:"voting_open"`
	HideJudges bool `json:"hide_judges_from_viewers"`
}

// DefaultSettings returns the deployment defaults.
func DefaultSettings() Settings {
	return Settings{VotingOpen: true, HideJudges: true}
}

// LeaderboardRow is one ranked entry of the aggregated board.
type LeaderboardRow struct {
	Rank       int     `json:"rank"`
	Contestant string  `json:"contestant"`
	Total      int     `json:"total"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
	Tens       int     `json:"tens"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
