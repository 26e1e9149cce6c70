// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/juryboard/juryboard/leaderboard"
	"github.com/juryboard/juryboard/middleware"
	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store"
)

type BoardHandler struct {
	store store.Store
	opts  leaderboard.Options
}

func NewBoardHandler(st store.Store, opts leaderboard.Options) *BoardHandler {
	return &BoardHandler{store: st, opts: opts}
}

// Get handles GET /leaderboard
// The ranked board is public for every role. It is recomputed from a
// fresh ledger snapshot on each call.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	votes, err := h.store.ListAll()
	if err != nil {
		writeStoreError(w, err, "failed to list votes")
		return
	}

	rows := leaderboard.Compute(votes, h.opts)

	resp := models.LeaderboardResponse{Rows: rows}
	if len(rows) > 0 {
		winner := rows[0]
		resp.Winner = &winner
	}
	if resp.Rows == nil {
		resp.Rows = []models.LeaderboardRow{}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
