package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions is the in-memory registry of bearer tokens issued by the
// shared-secret login. Tokens expire after the TTL; there is no persistence,
// a restart logs everyone out.
type Sessions struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	ttl    time.Duration
}

// NewSessions creates a session registry with the given token lifetime.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
	}
}

// Issue creates and remembers a fresh bearer token.
func (s *Sessions) Issue() string {
	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return token
}

// Valid reports whether the token exists and has not expired.
func (s *Sessions) Valid(token string) bool {
	s.mu.RLock()
	expiry, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return false
	}
	return true
}

// CheckSecret compares a login attempt against the shared secret in
// constant time.
func CheckSecret(attempt, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(attempt), []byte(secret)) == 1
}

// RequireSession validates the bearer token from the Authorization header.
func RequireSession(sessions *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				http.Error(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}

			// Support both "Bearer <token>" and "<token>" formats
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" || !sessions.Valid(token) {
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
