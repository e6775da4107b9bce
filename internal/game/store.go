package game

import (
	"sync"
	"time"
)

// Store is the session registry. The map lock only guards membership;
// each session carries its own mutex for round state, so operations on
// distinct games never contend.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Put inserts a new session, failing if the gameId is already taken.
// Check-and-insert happens under one lock so two concurrent starts with
// the same id cannot both win.
func (s *Store) Put(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; ok {
		return ErrGameExists
	}
	s.sessions[sess.ID] = sess
	return nil
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Reap drops terminal sessions that finished before the cutoff and
// returns how many were removed. Active sessions are never touched.
//
// Session locks are never taken while holding the registry lock: Start
// holds a session lock across Put, so nesting them here would deadlock.
func (s *Store) Reap(cutoff time.Time) int {
	s.mu.RLock()
	candidates := make(map[string]*Session, len(s.sessions))
	for id, sess := range s.sessions {
		candidates[id] = sess
	}
	s.mu.RUnlock()

	var dead []string
	for id, sess := range candidates {
		sess.mu.Lock()
		if sess.Status.Terminal() && !sess.FinishedAt.IsZero() && sess.FinishedAt.Before(cutoff) {
			dead = append(dead, id)
		}
		sess.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// terminal sessions never revert, so a surviving entry is still dead
	n := 0
	for _, id := range dead {
		if _, ok := s.sessions[id]; ok {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}
