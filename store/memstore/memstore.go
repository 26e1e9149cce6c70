// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package memstore

import (
	"sync"
	"time"

	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store"
)

// Store is the in-process demo backend. All state is lost on restart.
type Store struct {
	mu          sync.Mutex
	votes       []models.Vote
	contestants []string
	settings    models.Settings
}

// New returns an empty store with default settings.
func New() *Store {
	return &Store{settings: models.DefaultSettings()}
}

func (s *Store) Append(v models.Vote) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.votes = append(s.votes, v)
	return v.ID, nil
}

func (s *Store) Find(judge, contestant string) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.votes {
		if s.votes[i].Judge == judge && s.votes[i].Contestant == contestant {
			v := s.votes[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateScore(id string, score int, ts time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.votes {
		if s.votes[i].ID == id {
			s.votes[i].Score = score
			s.votes[i].Timestamp = ts
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListAll() ([]models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Vote, len(s.votes))
	copy(out, s.votes)
	return out, nil
}

func (s *Store) DeleteByIDs(ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := s.votes[:0]
	deleted := 0
	for _, v := range s.votes {
		if drop[v.ID] {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	s.votes = kept
	return deleted, nil
}

func (s *Store) DeleteByContestant(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = store.NormalizeName(name)
	kept := s.votes[:0]
	deleted := 0
	for _, v := range s.votes {
		if v.Contestant == name {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	s.votes = kept
	return deleted, nil
}

func (s *Store) DeleteLast() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.votes) == 0 {
		return false, nil
	}
	s.votes = s.votes[:len(s.votes)-1]
	return true, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.votes = nil
	return nil
}

func (s *Store) Settings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings, nil
}

func (s *Store) SaveSettings(set models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = set
	return nil
}

func (s *Store) Contestants() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.contestants))
	copy(out, s.contestants)
	return out, nil
}

func (s *Store) AddContestant(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = store.NormalizeName(name)
	if name == "" {
		return false, nil
	}
	for _, c := range s.contestants {
		if c == name {
			return false, nil
		}
	}
	s.contestants = append(s.contestants, name)
	return true, nil
}

func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.votes = nil
	s.contestants = nil
	s.settings = models.DefaultSettings()
	return nil
}
