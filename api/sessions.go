/*
sessions.go - In-memory session table

PURPOSE:
  Maps opaque session tokens to usernames. Tokens are random UUIDs handed
  out at login in an HttpOnly cookie and dropped at logout. Sessions live
  in process memory only; a restart logs everyone out.
*/
package api

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "session"

// Sessions is a concurrency-safe token -> username table.
type Sessions struct {
	mu      sync.RWMutex
	byToken map[string]string
}

func NewSessions() *Sessions {
	return &Sessions{byToken: make(map[string]string)}
}

// Create opens a session for username and returns its token.
func (s *Sessions) Create(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.byToken[token] = username
	s.mu.Unlock()
	return token
}

// Lookup resolves a token to its username.
func (s *Sessions) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	username, ok := s.byToken[token]
	return username, ok
}

// Destroy ends the session for token. Destroying an unknown token is a no-op.
func (s *Sessions) Destroy(token string) {
	s.mu.Lock()
	delete(s.byToken, token)
	s.mu.Unlock()
}

// user returns the session username for the request, if any.
func (s *Sessions) user(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}
	return s.Lookup(cookie.Value)
}
