package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juryboard/juryboard/models"
	"github.com/juryboard/juryboard/store"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s, path
}

func TestNewCreatesFileWithDefaults(t *testing.T) {
	s, path := newTestStore(t)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Data file not created: %v", err)
	}

	settings, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", settings)
	}
}

func TestPersistenceAcrossInstances(t *testing.T) {
	s, path := newTestStore(t)

	if _, err := s.Append(models.Vote{ID: "v1", Judge: "j1", Contestant: "Ali", Score: 8, Timestamp: time.Now()}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := s.AddContestant("Ali"); err != nil {
		t.Fatalf("AddContestant failed: %v", err)
	}
	if err := s.SaveSettings(models.Settings{VotingOpen: false, HideJudges: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	// A second instance over the same file sees everything.
	reopened, err := New(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}

	votes, err := reopened.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(votes) != 1 || votes[0].ID != "v1" || votes[0].Score != 8 {
		t.Errorf("Votes did not survive reopen: %+v", votes)
	}

	contestants, _ := reopened.Contestants()
	if len(contestants) != 1 || contestants[0] != "Ali" {
		t.Errorf("Roster did not survive reopen: %v", contestants)
	}

	settings, _ := reopened.Settings()
	if settings.VotingOpen {
		t.Error("Settings did not survive reopen")
	}
}

func TestUpsertCycle(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Append(models.Vote{ID: "v1", Judge: "j1", Contestant: "Ali", Score: 5, Timestamp: time.Now()}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	found, err := s.Find("j1", "Ali")
	if err != nil || found == nil {
		t.Fatalf("Find failed: v=%v err=%v", found, err)
	}

	ok, err := s.UpdateScore(found.ID, 9, time.Now())
	if err != nil || !ok {
		t.Fatalf("UpdateScore failed: ok=%v err=%v", ok, err)
	}

	votes, _ := s.ListAll()
	if len(votes) != 1 || votes[0].Score != 9 {
		t.Errorf("Update not visible: %+v", votes)
	}
}

func TestDeleteCounts(t *testing.T) {
	s, _ := newTestStore(t)

	for i, id := range []string{"v1", "v2", "v3"} {
		contestant := "Ali"
		if i == 2 {
			contestant = "Ayşe"
		}
		if _, err := s.Append(models.Vote{ID: id, Judge: "j1", Contestant: contestant, Score: 5, Timestamp: time.Now()}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	n, err := s.DeleteByContestant("Ali")
	if err != nil || n != 2 {
		t.Errorf("DeleteByContestant: n=%d err=%v, want 2, nil", n, err)
	}

	n, err = s.DeleteByIDs([]string{"v3", "missing"})
	if err != nil || n != 1 {
		t.Errorf("DeleteByIDs: n=%d err=%v, want 1, nil", n, err)
	}

	n, err = s.DeleteByContestant("Hayalet")
	if err != nil || n != 0 {
		t.Errorf("Zero-match delete: n=%d err=%v, want 0, nil", n, err)
	}
}

func TestDeleteLast(t *testing.T) {
	s, _ := newTestStore(t)

	ok, err := s.DeleteLast()
	if err != nil || ok {
		t.Errorf("DeleteLast on empty: ok=%v err=%v", ok, err)
	}

	s.Append(models.Vote{ID: "v1", Judge: "j1", Contestant: "Ali", Score: 5, Timestamp: time.Now()})
	s.Append(models.Vote{ID: "v2", Judge: "j2", Contestant: "Ali", Score: 6, Timestamp: time.Now()})

	ok, err = s.DeleteLast()
	if err != nil || !ok {
		t.Fatalf("DeleteLast failed: ok=%v err=%v", ok, err)
	}

	votes, _ := s.ListAll()
	if len(votes) != 1 || votes[0].ID != "v1" {
		t.Errorf("Expected v1 to remain, got %+v", votes)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	s.Append(models.Vote{ID: "v1", Judge: "j1", Contestant: "Ali", Score: 5, Timestamp: time.Now()})
	s.AddContestant("Ali")

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	votes, _ := s.ListAll()
	contestants, _ := s.Contestants()
	if len(votes) != 0 || len(contestants) != 0 {
		t.Error("Reset left data behind")
	}
}

func TestCorruptFileSurfacesUnavailable(t *testing.T) {
	s, path := newTestStore(t)

	if err := os.WriteFile(path, []byte("{truncated"), 0o600); err != nil {
		t.Fatalf("Failed to corrupt file: %v", err)
	}

	_, err := s.ListAll()
	if !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("Got %v, want ErrUnavailable", err)
	}
}
