package service

import (
	"context"
	"sync"

	"fitfusion/internal/modules/auth/domain"
	authout "fitfusion/internal/modules/auth/port/out"
)

// SessionStore is the single process-wide holder of the authenticated
// identity, seeded from the credential store at startup. It is an explicit
// dependency rather than package-level state so tests can inject fakes.
// The mutex covers bubbletea command goroutines; operations stay total
// functions over their inputs.
type SessionStore struct {
	mu            sync.RWMutex
	session       domain.Session
	authenticated bool

	durable authout.CredentialStore
}

func NewSessionStore(durable authout.CredentialStore) *SessionStore {
	s := &SessionStore{durable: durable}
	s.RefreshFromStorage(context.Background())
	return s
}

// SetIdentity replaces the current identity and marks the store
// authenticated. Durable writes are the auth service's job.
func (s *SessionStore) SetIdentity(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
	s.authenticated = true
}

// Clear drops the in-memory identity. The durable removal and the
// navigation side effect belong to Logout.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	s.authenticated = false
}

// RefreshFromStorage re-reads durable storage, reconciling in-memory state
// after external changes.
func (s *SessionStore) RefreshFromStorage(ctx context.Context) {
	creds, err := s.durable.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Missing or unreadable state counts as logged out; the next
		// login rewrites it.
		s.session = domain.Session{}
		s.authenticated = false
		return
	}
	s.session = creds.Session
	s.authenticated = true
}

func (s *SessionStore) Current() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.authenticated
}
