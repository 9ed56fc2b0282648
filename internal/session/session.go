// Package session holds the client's authenticated state: the bearer token,
// the account identity and the derived vault key.
//
// A Session is created empty, filled by a successful login and cleared on
// logout or when the server rejects the token. Nothing in it is ever
// persisted; the key exists only in process memory.
package session

import (
	"sync"

	"github.com/MKhiriev/go-vault-sync/internal/crypto"
)

// Session is safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	username string
	userID   string
	token    string
	key      crypto.SymmetricKey
	loggedIn bool
}

// New returns an empty, unauthenticated session.
func New() *Session {
	return &Session{}
}

// Begin replaces the current state with a freshly authenticated one. Any key
// held before is wiped first. The session takes ownership of key.
func (s *Session) Begin(username, userID, token string, key crypto.SymmetricKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key.Wipe()

	s.username = username
	s.userID = userID
	s.token = token
	s.key = key
	s.loggedIn = true
}

// Clear wipes the key bytes and forgets the token and identity.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key.Wipe()

	s.username = ""
	s.userID = ""
	s.token = ""
	s.key = nil
	s.loggedIn = false
}

func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Key returns a copy of the vault key, or nil when logged out. Callers may
// wipe the copy when done without affecting the session.
func (s *Session) Key() crypto.SymmetricKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key.Clone()
}
