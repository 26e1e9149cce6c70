// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package filestore persists the full store state in one JSON document.

Every operation reloads the file, mutates the decoded state, and writes
it back through a temp file plus rename so a crash mid-write never
leaves a torn document. Suited to single-instance deployments; two
processes sharing one data file will lose writes to each other.

Any I/O or decode failure surfaces as store.ErrUnavailable.
*/
package filestore
