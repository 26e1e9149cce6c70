// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/juryboard/juryboard/middleware"
	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/policy"
	"github.com/juryboard/juryboard/scoring"
	"github.com/juryboard/juryboard/store"
)

type VoteHandler struct {
	store  store.Store
	engine *scoring.Engine
}

func NewVoteHandler(st store.Store, engine *scoring.Engine) *VoteHandler {
	return &VoteHandler{store: st, engine: engine}
}

// Submit handles POST /votes
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r)
	if !policy.CanSubmit(identity.Role) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only judges may submit scores")
		return
	}

	// Parse request
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Contestant == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contestant is required")
		return
	}

	// Fractional or non-numeric scores never reach the engine.
	score, err := req.Score.Int64()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, scoring.ErrInvalidScore.Error())
		return
	}

	voteID, updated, err := h.engine.Submit(identity.Username, identity.Role, req.Contestant, int(score), req.Note)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrInvalidScore), errors.Is(err, scoring.ErrUnknownContestant):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, scoring.ErrVotingClosed):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, store.ErrUnavailable):
			slog.Error("storage unavailable on submit", "error", err, "judge", identity.Username)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unavailable, try again")
		default:
			slog.Error("failed to submit vote", "error", err, "judge", identity.Username)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		}
		return
	}

	message := "Score recorded"
	if updated {
		message = "Score updated"
	}

	slog.Info("vote submitted", "judge", identity.Username, "contestant", req.Contestant, "updated", updated)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID:  voteID,
		Updated: updated,
		Message: message,
	})
}

// List handles GET /votes
// The detail view is public; judge attribution is masked per role and
// the hide_judges_from_viewers setting.
func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r)

	settings, err := h.store.Settings()
	if err != nil {
		writeStoreError(w, err, "failed to read settings")
		return
	}

	votes, err := h.store.ListAll()
	if err != nil {
		writeStoreError(w, err, "failed to list votes")
		return
	}

	masked := policy.MaskVotes(votes, identity.Role, identity.Username, settings)
	if masked == nil {
		masked = []models.Vote{}
	}

	middleware.JSONResponse(w, http.StatusOK, masked)
}

// Mine handles GET /votes/mine
// Returns the caller's own submissions with full attribution.
func (h *VoteHandler) Mine(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r)
	if !policy.CanSubmit(identity.Role) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Login required")
		return
	}

	votes, err := h.store.ListAll()
	if err != nil {
		writeStoreError(w, err, "failed to list votes")
		return
	}

	mine := []models.Vote{}
	for _, v := range votes {
		if v.Judge == identity.Username {
			mine = append(mine, v)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, mine)
}

// writeStoreError maps storage failures to 503 and everything else to 500.
func writeStoreError(w http.ResponseWriter, err error, logMsg string) {
	slog.Error(logMsg, "error", err)
	if errors.Is(err, store.ErrUnavailable) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unavailable, try again")
		return
	}
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}
