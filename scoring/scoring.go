// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store"
)

var (
	ErrInvalidScore      = errors.New("score must be an integer between 1 and 10")
	ErrVotingClosed      = errors.New("voting is closed")
	ErrUnknownContestant = errors.New("contestant is not on the roster")
)

// Engine enforces the at-most-one-vote-per-(judge, contestant) invariant
// on the write path.
type Engine struct {
	store store.Store
}

func NewEngine(st store.Store) *Engine {
	return &Engine{store: st}
}

// Submit records a score for (judge, contestant): insert on first
// submission, update-in-place on resubmission. Validation happens before
// any mutation is attempted.
//
// The find-then-write span holds no lock across sessions; concurrent
// submissions for the same pair resolve last-write-wins.
func (e *Engine) Submit(judge, role, contestant string, score int, note string) (voteID string, updated bool, err error) {
	if score < 1 || score > 10 {
		return "", false, ErrInvalidScore
	}

	contestant = store.NormalizeName(contestant)

	// The window gate fires before the roster lookup: a judge submitting
	// while voting is closed hears "closed", whatever they typed.
	// Admins may always record or correct votes.
	if role != models.RoleAdmin {
		settings, err := e.store.Settings()
		if err != nil {
			return "", false, err
		}
		if !settings.VotingOpen {
			return "", false, ErrVotingClosed
		}
	}

	known, err := e.knownContestant(contestant)
	if err != nil {
		return "", false, err
	}
	if !known {
		return "", false, ErrUnknownContestant
	}

	existing, err := e.store.Find(judge, contestant)
	if err != nil {
		return "", false, err
	}

	now := time.Now()
	if existing != nil {
		ok, err := e.store.UpdateScore(existing.ID, score, now)
		if err != nil {
			return "", false, err
		}
		if ok {
			return existing.ID, true, nil
		}
		// The record vanished between find and update (admin delete in
		// another session). Fall through to a fresh insert.
	}

	id, err := e.store.Append(models.Vote{
		ID:         uuid.NewString(),
		Judge:      judge,
		Contestant: contestant,
		Score:      score,
		Note:       note,
		Timestamp:  now,
	})
	if err != nil {
		return "", false, err
	}
	return id, false, nil
}

func (e *Engine) knownContestant(name string) (bool, error) {
	contestants, err := e.store.Contestants()
	if err != nil {
		return false, err
	}
	for _, c := range contestants {
		if c == name {
			return true, nil
		}
	}
	return false, nil
}
