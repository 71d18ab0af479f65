package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const sessionTokenBytes = 32

type session struct {
	principal    string
	createdAt    time.Time
	lastActivity time.Time
}

// SessionStore holds opaque-token sessions with a sliding expiration.
// Validation refreshes last activity; expired records are dropped lazily
// on lookup and by the periodic CleanExpired sweep.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	timeout  time.Duration

	now func() time.Time

	log *zap.Logger
}

func NewSessionStore(timeout time.Duration, log *zap.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		timeout:  timeout,
		now:      time.Now,
		log:      log.With(zap.String("component", "sessions")),
	}
}

// Create generates a new random token for the principal and stores the
// session record. Collisions are retried, in practice they never happen.
func (s *SessionStore) Create(principal string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < 3; i++ {
		token, err := generateToken()
		if err != nil {
			return "", err
		}
		if _, exists := s.sessions[token]; exists {
			continue
		}

		now := s.now()
		s.sessions[token] = &session{
			principal:    principal,
			createdAt:    now,
			lastActivity: now,
		}
		return token, nil
	}

	return "", fmt.Errorf("session token collision")
}

// Validate reports whether the token names a live session. A session past
// its timeout is deleted and reported invalid; a live one gets its last
// activity refreshed.
func (s *SessionStore) Validate(token string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return false
	}

	if now.Sub(sess.lastActivity) > s.timeout {
		delete(s.sessions, token)
		return false
	}

	sess.lastActivity = now
	return true
}

// Invalidate removes the session. Deleting an unknown token is a no-op.
func (s *SessionStore) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// CleanExpired sweeps out every session past the timeout and returns how
// many were removed. Validate self-expires, so this only reclaims memory.
func (s *SessionStore) CleanExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if now.Sub(sess.lastActivity) > s.timeout {
			delete(s.sessions, token)
			removed++
		}
	}

	if removed > 0 {
		s.log.Info("cleaned expired sessions", zap.Int("count", removed))
	}

	return removed
}

func generateToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
