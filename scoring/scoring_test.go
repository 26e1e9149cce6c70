package scoring

import (
	"errors"
	"testing"

	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store/memstore"
)

func newEngine(t *testing.T) (*Engine, *memstore.Store) {
	t.Helper()

	st := memstore.New()
	if _, err := st.AddContestant("Ali"); err != nil {
		t.Fatalf("Failed to seed contestant: %v", err)
	}
	if _, err := st.AddContestant("Ayşe"); err != nil {
		t.Fatalf("Failed to seed contestant: %v", err)
	}
	return NewEngine(st), st
}

func TestSubmitValidationBoundary(t *testing.T) {
	engine, _ := newEngine(t)

	tests := []struct {
		name    string
		score   int
		wantErr error
	}{
		{name: "below range", score: 0, wantErr: ErrInvalidScore},
		{name: "above range", score: 11, wantErr: ErrInvalidScore},
		{name: "negative", score: -4, wantErr: ErrInvalidScore},
		{name: "lower bound", score: 1, wantErr: nil},
		{name: "upper bound", score: 10, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := engine.Submit("j1", models.RoleJudge, "Ali", tt.score, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Submit score=%d: got err %v, want %v", tt.score, err, tt.wantErr)
			}
		})
	}
}

func TestSubmitInsertThenUpdate(t *testing.T) {
	engine, st := newEngine(t)

	id1, updated, err := engine.Submit("j1", models.RoleJudge, "Ali", 7, "")
	if err != nil {
		t.Fatalf("First submit failed: %v", err)
	}
	if updated {
		t.Error("First submission reported as update")
	}

	id2, updated, err := engine.Submit("j1", models.RoleJudge, "Ali", 9, "")
	if err != nil {
		t.Fatalf("Second submit failed: %v", err)
	}
	if !updated {
		t.Error("Resubmission not reported as update")
	}
	if id1 != id2 {
		t.Errorf("Resubmission created a new record: %q vs %q", id1, id2)
	}

	votes, err := st.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("Expected 1 record after resubmission, got %d", len(votes))
	}
	if votes[0].Score != 9 {
		t.Errorf("Expected updated score 9, got %d", votes[0].Score)
	}
}

func TestSubmitUniquenessInvariant(t *testing.T) {
	engine, st := newEngine(t)

	// Arbitrary submission sequence: repeated pairs, multiple judges
	// and contestants.
	seq := []struct {
		judge      string
		contestant string
		score      int
	}{
		{"j1", "Ali", 5},
		{"j2", "Ali", 6},
		{"j1", "Ali", 7},
		{"j1", "Ayşe", 8},
		{"j2", "Ali", 9},
		{"j1", "Ayşe", 10},
		{"j2", "Ayşe", 3},
	}

	for _, s := range seq {
		if _, _, err := engine.Submit(s.judge, models.RoleJudge, s.contestant, s.score, ""); err != nil {
			t.Fatalf("Submit(%q, %q, %d) failed: %v", s.judge, s.contestant, s.score, err)
		}
	}

	votes, err := st.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	seen := make(map[[2]string]bool)
	for _, v := range votes {
		key := [2]string{v.Judge, v.Contestant}
		if seen[key] {
			t.Errorf("Duplicate record for pair %v", key)
		}
		seen[key] = true
	}
	if len(votes) != 4 {
		t.Errorf("Expected 4 distinct pairs, got %d records", len(votes))
	}
}

func TestSubmitIdempotentOnValue(t *testing.T) {
	engine, st := newEngine(t)

	if _, _, err := engine.Submit("j1", models.RoleJudge, "Ali", 8, ""); err != nil {
		t.Fatalf("First submit failed: %v", err)
	}
	if _, _, err := engine.Submit("j1", models.RoleJudge, "Ali", 8, ""); err != nil {
		t.Fatalf("Second submit failed: %v", err)
	}

	votes, _ := st.ListAll()
	if len(votes) != 1 || votes[0].Score != 8 {
		t.Errorf("Repeated identical submission changed state: %+v", votes)
	}
}

func TestSubmitVotingClosedGate(t *testing.T) {
	engine, st := newEngine(t)

	if err := st.SaveSettings(models.Settings{VotingOpen: false, HideJudges: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	_, _, err := engine.Submit("j1", models.RoleJudge, "Ali", 5, "")
	if !errors.Is(err, ErrVotingClosed) {
		t.Errorf("Judge submit while closed: got %v, want ErrVotingClosed", err)
	}

	// Admin is never blocked by the voting_open setting.
	if _, _, err := engine.Submit("admin", models.RoleAdmin, "Ali", 5, ""); err != nil {
		t.Errorf("Admin submit while closed failed: %v", err)
	}
}

func TestSubmitUnknownContestant(t *testing.T) {
	engine, _ := newEngine(t)

	_, _, err := engine.Submit("j1", models.RoleJudge, "Hayalet", 5, "")
	if !errors.Is(err, ErrUnknownContestant) {
		t.Errorf("Got %v, want ErrUnknownContestant", err)
	}
}

func TestSubmitClosedWindowWinsOverUnknownContestant(t *testing.T) {
	engine, st := newEngine(t)

	if err := st.SaveSettings(models.Settings{VotingOpen: false, HideJudges: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	// The window gate fires before the roster lookup for judges.
	_, _, err := engine.Submit("j1", models.RoleJudge, "Hayalet", 5, "")
	if !errors.Is(err, ErrVotingClosed) {
		t.Errorf("Judge with unknown name while closed: got %v, want ErrVotingClosed", err)
	}

	// An admin bypasses the window and hits the roster check.
	_, _, err = engine.Submit("admin", models.RoleAdmin, "Hayalet", 5, "")
	if !errors.Is(err, ErrUnknownContestant) {
		t.Errorf("Admin with unknown name while closed: got %v, want ErrUnknownContestant", err)
	}
}

func TestSubmitNormalizesContestantName(t *testing.T) {
	engine, st := newEngine(t)

	// "  Ali " and "Ali" are the same roster entry.
	if _, _, err := engine.Submit("j1", models.RoleJudge, "  Ali ", 6, ""); err != nil {
		t.Fatalf("Submit with unnormalized name failed: %v", err)
	}
	if _, _, err := engine.Submit("j1", models.RoleJudge, "Ali", 9, ""); err != nil {
		t.Fatalf("Submit with normalized name failed: %v", err)
	}

	votes, _ := st.ListAll()
	if len(votes) != 1 {
		t.Errorf("Name normalization leaked duplicate pairs: %d records", len(votes))
	}
}

func TestSubmitValidationHasNoSideEffects(t *testing.T) {
	engine, st := newEngine(t)

	if _, _, err := engine.Submit("j1", models.RoleJudge, "Ali", 42, "note"); err == nil {
		t.Fatal("Expected validation error")
	}

	votes, _ := st.ListAll()
	if len(votes) != 0 {
		t.Errorf("Failed validation left %d records in the ledger", len(votes))
	}
}

func TestSubmitKeepsNote(t *testing.T) {
	engine, st := newEngine(t)

	if _, _, err := engine.Submit("j1", models.RoleJudge, "Ali", 9, "clean voice"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	votes, _ := st.ListAll()
	if votes[0].Note != "clean voice" {
		t.Errorf("Note not stored: %+v", votes[0])
	}
}
