package store

import (
	"errors"
	"testing"

	"micat-content-api/models"
)

func seed() State {
	return State{
		Users: []models.User{
			{ID: "u1", Name: "Alice", Active: true},
		},
		Submissions: []models.Submission{
			{ID: "s1", Title: "First", Status: models.StatusPending, Tags: []string{"a"}},
		},
	}
}

func TestUpdateCommitsOnNil(t *testing.T) {
	s := New(seed())

	err := s.Update(func(st *State) error {
		st.Submissions[0].Status = models.StatusApproved
		return nil
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	snap := s.Snapshot()
	if snap.Submissions[0].Status != models.StatusApproved {
		t.Fatalf("expected committed status approved, got %s", snap.Submissions[0].Status)
	}
}

func TestUpdateDiscardsOnError(t *testing.T) {
	s := New(seed())
	boom := errors.New("boom")

	err := s.Update(func(st *State) error {
		st.Submissions[0].Status = models.StatusDenied
		st.Users = nil
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	snap := s.Snapshot()
	if snap.Submissions[0].Status != models.StatusPending {
		t.Fatalf("failed update leaked a partial write: %s", snap.Submissions[0].Status)
	}
	if len(snap.Users) != 1 {
		t.Fatalf("failed update leaked user mutation")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := New(seed())
	before := s.Snapshot()

	if err := s.Update(func(st *State) error {
		st.Submissions[0].Title = "Changed"
		st.Submissions[0].Tags[0] = "b"
		return nil
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if before.Submissions[0].Title != "First" {
		t.Fatalf("held snapshot observed a later commit")
	}
	if before.Submissions[0].Tags[0] != "a" {
		t.Fatalf("held snapshot shares tag backing array with the store")
	}
}

func TestSnapshotMutationDoesNotLeakIn(t *testing.T) {
	s := New(seed())

	snap := s.Snapshot()
	snap.Submissions[0].Title = "Hacked"

	if got := s.Snapshot().Submissions[0].Title; got != "First" {
		t.Fatalf("mutating a snapshot changed the store: %s", got)
	}
}
