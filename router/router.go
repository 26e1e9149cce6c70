// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/juryboard/juryboard/auth"
	"github.com/juryboard/juryboard/cliparse"
	"github.com/juryboard/juryboard/handlers"
	"github.com/juryboard/juryboard/leaderboard"
	"github.com/juryboard/juryboard/middleware"
	"github.com/juryboard/juryboard/scoring"
	"github.com/juryboard/juryboard/store"
)

func NewRouter(st store.Store, a *auth.Authenticator, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	engine := scoring.NewEngine(st)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(a)
	voteHandler := handlers.NewVoteHandler(st, engine)
	boardHandler := handlers.NewBoardHandler(st, leaderboard.Options{TieBreakTens: cfg.TieBreakTens})
	adminHandler := handlers.NewAdminHandler(st)

	logged := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.Identify(a, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Voting
	mux.HandleFunc("POST /votes", logged(voteHandler.Submit))
	mux.HandleFunc("GET /votes", logged(voteHandler.List))
	mux.HandleFunc("GET /votes/mine", logged(voteHandler.Mine))

	// Leaderboard (public)
	mux.HandleFunc("GET /leaderboard", logged(boardHandler.Get))

	// Roster and settings
	mux.HandleFunc("GET /contestants", logged(adminHandler.ListContestants))
	mux.HandleFunc("POST /contestants", logged(adminHandler.AddContestant))
	mux.HandleFunc("GET /settings", logged(adminHandler.GetSettings))
	mux.HandleFunc("PUT /settings", logged(adminHandler.UpdateSettings))

	// Ledger maintenance (admin)
	mux.HandleFunc("DELETE /votes", logged(adminHandler.DeleteVotes))
	mux.HandleFunc("DELETE /votes/last", logged(adminHandler.UndoLastVote))
	mux.HandleFunc("DELETE /votes/all", logged(adminHandler.ClearVotes))
	mux.HandleFunc("DELETE /contestants/{name}/votes", logged(adminHandler.DeleteContestantVotes))
	mux.HandleFunc("POST /reset", logged(adminHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("juryboard API v1"))
	})

	return mux
}
