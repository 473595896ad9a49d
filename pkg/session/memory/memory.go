// Package memory implements an in-process session store for development and
// tests.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"coffeeshop/pkg/session"
)

type entry struct {
	data    []byte
	expires time.Time
}

// Store keeps sessions in a map. Values are stored encoded so callers never
// share a cart map with the store.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]entry
}

// New returns a Store whose sessions expire ttl after their last save.
func New(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, sessions: make(map[string]entry)}
}

// Save stores s and refreshes its expiry.
func (s *Store) Save(ctx context.Context, sess *session.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = entry{data: b, expires: s.now().Add(s.ttl)}
	return nil
}

// Get loads a session that has not expired.
func (s *Store) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok && !s.now().Before(e.expires) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, session.ErrNotFound
	}

	var sess session.Session
	if err := json.Unmarshal(e.data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
