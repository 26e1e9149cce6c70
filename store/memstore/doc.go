// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package memstore is the in-memory storage backend. Everything lives
// in process memory behind one mutex and vanishes on restart; it backs
// demo deployments and the test suite.
package memstore
