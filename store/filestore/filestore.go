// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store"
)

// fileState is the on-disk document. One JSON file holds the whole
// deployment: roster, settings, and the vote log in arrival order.
type fileState struct {
	Contestants []string        `json:"contestants"`
	Settings    models.Settings `json:"settings"`
	Votes       []models.Vote   `json:"votes"`
}

// Store persists everything in a single local JSON file. Reads load the
// file fresh so concurrent processes sharing the file see each other's
// writes; the mutex only serializes this process's read-modify-write
// spans.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by the given file. The file is created with
// default settings if it does not exist.
func New(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(defaultState()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return s, nil
}

func defaultState() fileState {
	return fileState{Settings: models.DefaultSettings()}
}

func (s *Store) load() (fileState, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fileState{}, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	var st fileState
	if err := json.Unmarshal(raw, &st); err != nil {
		return fileState{}, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return st, nil
}

// save writes to a temp file and renames it into place so a crashed or
// rejected write never leaves a truncated document behind.
func (s *Store) save(st fileState) error {
	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".juryboard-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Append(v models.Vote) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return "", err
	}
	st.Votes = append(st.Votes, v)
	if err := s.save(st); err != nil {
		return "", err
	}
	return v.ID, nil
}

func (s *Store) Find(judge, contestant string) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range st.Votes {
		if st.Votes[i].Judge == judge && st.Votes[i].Contestant == contestant {
			v := st.Votes[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateScore(id string, score int, ts time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return false, err
	}
	for i := range st.Votes {
		if st.Votes[i].ID == id {
			st.Votes[i].Score = score
			st.Votes[i].Timestamp = ts
			if err := s.save(st); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListAll() ([]models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return st.Votes, nil
}

func (s *Store) DeleteByIDs(ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return 0, err
	}

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := st.Votes[:0]
	deleted := 0
	for _, v := range st.Votes {
		if drop[v.ID] {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	if deleted == 0 {
		return 0, nil
	}
	st.Votes = kept
	if err := s.save(st); err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *Store) DeleteByContestant(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return 0, err
	}

	name = store.NormalizeName(name)
	kept := st.Votes[:0]
	deleted := 0
	for _, v := range st.Votes {
		if v.Contestant == name {
			deleted++
			continue
		}
		kept = append(kept, v)
	}
	if deleted == 0 {
		return 0, nil
	}
	st.Votes = kept
	if err := s.save(st); err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *Store) DeleteLast() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return false, err
	}
	if len(st.Votes) == 0 {
		return false, nil
	}
	st.Votes = st.Votes[:len(st.Votes)-1]
	if err := s.save(st); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	st.Votes = nil
	return s.save(st)
}

func (s *Store) Settings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return models.Settings{}, err
	}
	return st.Settings, nil
}

func (s *Store) SaveSettings(set models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	st.Settings = set
	return s.save(st)
}

func (s *Store) Contestants() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return st.Contestants, nil
}

func (s *Store) AddContestant(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = store.NormalizeName(name)
	if name == "" {
		return false, nil
	}

	st, err := s.load()
	if err != nil {
		return false, err
	}
	for _, c := range st.Contestants {
		if c == name {
			return false, nil
		}
	}
	st.Contestants = append(st.Contestants, name)
	if err := s.save(st); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(defaultState())
}
