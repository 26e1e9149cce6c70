// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

Flags take precedence; environment variables are the fallback:

  - PORT (-p): server port (default 3419)
  - STORE_TYPE (-s): memory, file, sqlite, or postgres (default memory)
  - DATABASE_URL (-d): sqlite file path or postgres DSN
  - DATA_FILE (-data-file): JSON data file for the file store
  - ACCOUNTS_FILE (-accounts): judge roster JSON (required)
  - JWT_SECRET (-jwt-secret): session token secret (required)
  - TIEBREAK_TENS (-tiebreak-tens): optional third leaderboard tie-break

The memory store needs no further configuration and is the demo mode:
state lives only for the process lifetime. sqlite and postgres require
DATABASE_URL; the file store defaults to data.json in the working
directory.
*/
package cliparse
