package client

import (
	"sync"
	"time"
)

// Session holds the credentials of a signed-in administrator.
// It is safe for concurrent use; a 401 from any call clears it.
type Session struct {
	mu        sync.RWMutex
	token     string
	user      User
	expiresAt time.Time
}

func (s *Session) set(token string, user User, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user, s.expiresAt = token, user, expiresAt
}

// Clear forgets the stored credentials.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user, s.expiresAt = "", User{}, time.Time{}
}

// Token returns the bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Valid reports whether a token is present and not past its expiry.
func (s *Session) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && (s.expiresAt.IsZero() || time.Now().Before(s.expiresAt))
}
