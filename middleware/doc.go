// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

  - WithLogging: request/completion logging via slog
  - Identify: resolves an optional Bearer token to a viewer identity
  - CORS: cross-origin headers and preflight handling

Identify stores the identity in the request context; handlers read it
back with IdentityFrom:

	identity := middleware.IdentityFrom(r)

Requests without an Authorization header are anonymous. A malformed or
expired token is a 401.

# JSON Helpers

  - JSONResponse: writes a JSON body with status code
  - ErrorResponse: writes a models.ErrorResponse
  - ParseJSONBody: decodes the request body
*/
package middleware
