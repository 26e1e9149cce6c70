// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"strings"
	"time"

	"github.com/juryboard/juryboard/models"
)

var (
	// ErrUnavailable signals that the backing store could not be reached
	// or rejected a write. Callers may retry; the store never reports a
	// half-applied write as successful.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrNotFound signals a missing record where the operation cannot
	// express absence through its return values.
	ErrNotFound = errors.New("record not found")
)

// Ledger is the authoritative, arrival-ordered collection of vote records.
// It does not enforce (judge, contestant) uniqueness itself; the scoring
// engine guarantees that on the write path.
type Ledger interface {
	// Append adds a new record and returns its ID.
	Append(v models.Vote) (string, error)

	// Find returns the first record matching (judge, contestant) in
	// ledger order, or nil when none exists.
	Find(judge, contestant string) (*models.Vote, error)

	// UpdateScore mutates one record in place. Returns false when the ID
	// does not exist.
	UpdateScore(id string, score int, ts time.Time) (bool, error)

	// ListAll returns a fresh snapshot on every call. Results are never
	// cached across writes.
	ListAll() ([]models.Vote, error)

	// DeleteByIDs removes the given records and returns how many were
	// actually deleted. Removing zero is not an error.
	DeleteByIDs(ids []string) (int, error)

	// DeleteByContestant removes all votes for a contestant and returns
	// the count removed.
	DeleteByContestant(name string) (int, error)

	// DeleteLast removes the most recently appended record. Returns
	// false on an empty ledger.
	DeleteLast() (bool, error)

	// Clear wipes the ledger.
	Clear() error
}

// SettingsStore persists the deployment toggles.
type SettingsStore interface {
	Settings() (models.Settings, error)
	SaveSettings(s models.Settings) error
}

// Roster holds the contestant list. Names are normalized before compare
// and store; removal is not supported.
type Roster interface {
	Contestants() ([]string, error)
	// AddContestant returns false when the normalized name is empty or
	// already present.
	AddContestant(name string) (bool, error)
}

// Store is the full backend contract. Adapters are selected once at
// startup; business logic never branches on the backend kind.
type Store interface {
	Ledger
	SettingsStore
	Roster

	// Reset wipes votes and contestants and restores default settings.
	Reset() error
}

// NormalizeName trims and collapses internal whitespace so that roster
// comparisons ignore formatting differences.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
