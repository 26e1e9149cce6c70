// Copyright (c) 2026 Juryboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store"
)

// Store is the SQL backend. The caller opens the *sql.DB with whichever
// driver fits the deployment: modernc.org/sqlite for a local file,
// lib/pq for a remote server. The statements below stay inside the
// dialect subset both accept.
type Store struct {
	db *sql.DB
}

// New wraps an open database handle and ensures the schema exists.
func New(db *sql.DB) (*Store, error) {
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	if err := CreateSchema(db); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return &Store{db: db}, nil
}

// maxSeqRetries bounds how often Append re-races for a ledger position
// before giving up.
const maxSeqRetries = 10

// Append claims the next seq under the UNIQUE constraint: a concurrent
// session that read the same MAX loses the insert (DO NOTHING, zero rows)
// and this retries with a fresh read. The WHERE clause on the SELECT is
// required by the sqlite upsert grammar.
func (s *Store) Append(v models.Vote) (string, error) {
	for attempt := 0; attempt < maxSeqRetries; attempt++ {
		res, err := s.db.Exec(`
			INSERT INTO vote (id, seq, judge, contestant, score, note, ts)
			SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3, $4, $5, $6 FROM vote WHERE true
			ON CONFLICT (seq) DO NOTHING
		`, v.ID, v.Judge, v.Contestant, v.Score, v.Note, v.Timestamp)
		if err != nil {
			return "", fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		if n > 0 {
			return v.ID, nil
		}
	}
	return "", fmt.Errorf("%w: could not claim a ledger position", store.ErrUnavailable)
}

func (s *Store) Find(judge, contestant string) (*models.Vote, error) {
	var v models.Vote
	var note sql.NullString
	err := s.db.QueryRow(`
		SELECT id, judge, contestant, score, note, ts
		FROM vote
		WHERE judge = $1 AND contestant = $2
		ORDER BY seq
		LIMIT 1
	`, judge, contestant).Scan(&v.ID, &v.Judge, &v.Contestant, &v.Score, &note, &v.Timestamp)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	v.Note = note.String
	return &v, nil
}

func (s *Store) UpdateScore(id string, score int, ts time.Time) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE vote SET score = $1, ts = $2 WHERE id = $3
	`, score, ts, id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return n > 0, nil
}

func (s *Store) ListAll() ([]models.Vote, error) {
	rows, err := s.db.Query(`
		SELECT id, judge, contestant, score, note, ts
		FROM vote
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		var note sql.NullString
		if err := rows.Scan(&v.ID, &v.Judge, &v.Contestant, &v.Score, &note, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		v.Note = note.String
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return votes, nil
}

func (s *Store) DeleteByIDs(ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	deleted := 0
	for _, id := range ids {
		res, err := s.db.Exec(`DELETE FROM vote WHERE id = $1`, id)
		if err != nil {
			return deleted, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return deleted, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		deleted += int(n)
	}
	return deleted, nil
}

func (s *Store) DeleteByContestant(name string) (int, error) {
	res, err := s.db.Exec(`
		DELETE FROM vote WHERE contestant = $1
	`, store.NormalizeName(name))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return int(n), nil
}

// DeleteLast removes exactly one row, keyed by id rather than seq, so an
// undo can never take out more than the newest record.
func (s *Store) DeleteLast() (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM vote WHERE id = (SELECT id FROM vote ORDER BY seq DESC LIMIT 1)
	`)
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return n > 0, nil
}

func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM vote`); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Settings() (models.Settings, error) {
	var votingOpen, hideJudges int
	err := s.db.QueryRow(`
		SELECT voting_open, hide_judges FROM setting WHERE id = 1
	`).Scan(&votingOpen, &hideJudges)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return models.Settings{
		VotingOpen: votingOpen != 0,
		HideJudges: hideJudges != 0,
	}, nil
}

func (s *Store) SaveSettings(set models.Settings) error {
	_, err := s.db.Exec(`
		UPDATE setting SET voting_open = $1, hide_judges = $2 WHERE id = 1
	`, boolInt(set.VotingOpen), boolInt(set.HideJudges))
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Contestants() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM contestant ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return names, nil
}

func (s *Store) AddContestant(name string) (bool, error) {
	name = store.NormalizeName(name)
	if name == "" {
		return false, nil
	}

	res, err := s.db.Exec(`
		INSERT INTO contestant (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`, name)
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return n > 0, nil
}

func (s *Store) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM vote`,
		`DELETE FROM contestant`,
		`UPDATE setting SET voting_open = 1, hide_judges = 1 WHERE id = 1`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
