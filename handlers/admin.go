// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/juryboard/juryboard/middleware"
	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/policy"
	"github.com/juryboard/juryboard/store"
)

type AdminHandler struct {
	store store.Store
}

func NewAdminHandler(st store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// requireAdmin writes a 403 and returns false unless the caller is admin.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	identity := middleware.IdentityFrom(r)
	if !policy.CanAdministrate(identity.Role) {
		middleware.ErrorResponse(w, http.StatusForbidden, policy.ErrForbidden.Error())
		return false
	}
	return true
}

// ListContestants handles GET /contestants (public)
func (h *AdminHandler) ListContestants(w http.ResponseWriter, r *http.Request) {
	contestants, err := h.store.Contestants()
	if err != nil {
		writeStoreError(w, err, "failed to list contestants")
		return
	}
	if contestants == nil {
		contestants = []string{}
	}
	middleware.JSONResponse(w, http.StatusOK, contestants)
}

// AddContestant handles POST /contestants
func (h *AdminHandler) AddContestant(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req models.AddContestantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := store.NormalizeName(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	added, err := h.store.AddContestant(name)
	if err != nil {
		writeStoreError(w, err, "failed to add contestant")
		return
	}

	if !added {
		middleware.ErrorResponse(w, http.StatusConflict, "Contestant already exists")
		return
	}

	slog.Info("contestant added", "name", name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddContestantResponse{
		Name:  name,
		Added: true,
	})
}

// GetSettings handles GET /settings (public)
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.Settings()
	if err != nil {
		writeStoreError(w, err, "failed to read settings")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings
// Fields omitted from the request keep their current value. Last write
// wins; there is no versioning.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	settings, err := h.store.Settings()
	if err != nil {
		writeStoreError(w, err, "failed to read settings")
		return
	}

	if req.VotingOpen != nil {
		settings.VotingOpen = *req.VotingOpen
	}
	if req.HideJudges != nil {
		settings.HideJudges = *req.HideJudges
	}

	if err := h.store.SaveSettings(settings); err != nil {
		writeStoreError(w, err, "failed to save settings")
		return
	}

	slog.Info("settings updated", "voting_open", settings.VotingOpen, "hide_judges", settings.HideJudges)

	middleware.JSONResponse(w, http.StatusOK, settings)
}

// DeleteVotes handles DELETE /votes
// Removes the given vote IDs; stale IDs count as zero, not an error.
func (h *AdminHandler) DeleteVotes(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req models.DeleteVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	deleted, err := h.store.DeleteByIDs(req.IDs)
	if err != nil {
		writeStoreError(w, err, "failed to delete votes")
		return
	}

	slog.Info("votes deleted", "requested", len(req.IDs), "deleted", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteVotesResponse{Deleted: deleted})
}

// DeleteContestantVotes handles DELETE /contestants/{name}/votes
// Removes all votes for one contestant. The roster entry stays.
func (h *AdminHandler) DeleteContestantVotes(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	deleted, err := h.store.DeleteByContestant(name)
	if err != nil {
		writeStoreError(w, err, "failed to delete contestant votes")
		return
	}

	slog.Info("contestant votes deleted", "contestant", name, "deleted", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteVotesResponse{Deleted: deleted})
}

// UndoLastVote handles DELETE /votes/last
// Removes the most recently recorded vote, whoever cast it.
func (h *AdminHandler) UndoLastVote(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	removed, err := h.store.DeleteLast()
	if err != nil {
		writeStoreError(w, err, "failed to undo last vote")
		return
	}

	slog.Info("last vote undone", "removed", removed)

	middleware.JSONResponse(w, http.StatusOK, models.UndoVoteResponse{Removed: removed})
}

// ClearVotes handles DELETE /votes/all
// Wipes the ledger; the roster and settings stay.
func (h *AdminHandler) ClearVotes(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	if err := h.store.Clear(); err != nil {
		writeStoreError(w, err, "failed to clear votes")
		return
	}

	slog.Info("ledger cleared")

	w.WriteHeader(http.StatusNoContent)
}

// Reset handles POST /reset
// Full reset: votes, contestants, and settings back to defaults.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	if err := h.store.Reset(); err != nil {
		writeStoreError(w, err, "failed to reset")
		return
	}

	slog.Info("full reset")

	w.WriteHeader(http.StatusNoContent)
}
