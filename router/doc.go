// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the Juryboard API.

Routes use Go 1.22+ method-aware patterns on the standard ServeMux:

	mux.HandleFunc("DELETE /contestants/{name}/votes", ...)

Every route except /health and /login is wrapped in logging and
identity-resolution middleware. Identity resolution is optional per
request: viewers without a token are anonymous, and each handler applies
its own role gate.

The router wires the handler dependencies: the storage adapter chosen at
startup, the scoring engine built over it, and the leaderboard options
from configuration.
*/
package router
