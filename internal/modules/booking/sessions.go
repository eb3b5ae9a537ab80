package booking

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

type formSession struct {
	mu         sync.Mutex
	form       *Form
	lastActive time.Time
}

// sessionStore holds open booking forms in memory, keyed by opaque id.
// Sessions belong to a single operator tab and expire after inactivity;
// they are deliberately not persisted.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*formSession
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*formSession),
		ttl:      ttl,
	}
}

func (s *sessionStore) Create(form *Form) string {
	id := newSessionID()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked()
	s.sessions[id] = &formSession{form: form, lastActive: time.Now()}
	return id
}

// Do runs fn with the session's form under the session lock, refreshing the
// inactivity deadline.
func (s *sessionStore) Do(id string, fn func(f *Form) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if time.Since(sess.lastActive) > s.ttl {
		s.Delete(id)
		return ErrSessionNotFound
	}
	sess.lastActive = time.Now()
	return fn(sess.form)
}

func (s *sessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *sessionStore) purgeLocked() {
	for id, sess := range s.sessions {
		if time.Since(sess.lastActive) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
