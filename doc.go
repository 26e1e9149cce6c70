// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Juryboard API server.

Juryboard is a jury scoring service for live events: judges log in and
score contestants 1-10, an admin manages the roster and toggles, and a
ranked leaderboard aggregates the scores with deterministic
tie-breaking.

# Starting the Server

The server is configured through environment variables or CLI flags:

	ACCOUNTS_FILE=accounts.json JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3419 -s sqlite -d jury.db -accounts accounts.json

# Configuration

Required settings:

  - ACCOUNTS_FILE (-accounts): judge roster JSON with bcrypt hashes
  - JWT_SECRET (-jwt-secret): secret for session tokens

Optional settings:

  - PORT (-p): server port (default: 3419)
  - STORE_TYPE (-s): memory, file, sqlite, or postgres (default: memory)
  - DATABASE_URL (-d): sqlite path or postgres DSN
  - DATA_FILE (-data-file): JSON file for the file store
  - TIEBREAK_TENS (-tiebreak-tens): extra leaderboard tie-break

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, votes, board, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: identity resolution, CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Credential check and session tokens
  - scoring: the upsert engine enforcing one vote per (judge, contestant)
  - leaderboard: deterministic ranked aggregation
  - policy: role gates and judge-visibility masking
  - store: the storage contract, with memstore, filestore, and sqlstore
    adapters
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
