// Package store holds the whole application dataset in memory. There is no
// database: every mutation replaces a collection inside a single State value,
// applied atomically through Update.
package store

import (
	"sync"

	"micat-content-api/models"
)

// State is the complete dataset. Submissions, notifications and activity
// logs are ordered newest first; users and MACs keep creation order.
type State struct {
	Users         []models.User
	MACs          []models.MAC
	Submissions   []models.Submission
	Notifications []models.Notification
	ActivityLogs  []models.ActivityLog
}

// Store is the single state container. Readers receive snapshot copies, so
// a held snapshot never observes a later commit. Writers run one at a time
// and either commit a full replacement state or leave the store untouched.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New(seed State) *Store {
	return &Store{state: cloneState(seed)}
}

// View calls fn with a snapshot of the current state.
func (s *Store) View(fn func(State)) {
	s.mu.RLock()
	snap := cloneState(s.state)
	s.mu.RUnlock()
	fn(snap)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Update runs fn against a working copy of the state. If fn returns nil the
// working copy becomes the new state; any error discards it, so a failed
// transition leaves no partial writes behind.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneState(s.state)
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func cloneState(st State) State {
	out := State{
		Users:         append([]models.User(nil), st.Users...),
		MACs:          append([]models.MAC(nil), st.MACs...),
		Notifications: append([]models.Notification(nil), st.Notifications...),
		ActivityLogs:  append([]models.ActivityLog(nil), st.ActivityLogs...),
	}
	if st.Submissions != nil {
		out.Submissions = make([]models.Submission, len(st.Submissions))
		for i, sub := range st.Submissions {
			out.Submissions[i] = sub.Clone()
		}
	}
	return out
}
