// Package session holds the client's shared authentication state.
package session

import (
	"sync"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

// State is read by the command guard and written by the auth commands.
// The zero value is a signed-out session.
type State struct {
	mu            sync.RWMutex
	token         string
	user          *models.User
	authenticated bool
	loading       bool
}

func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil.
func (s *State) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// StartLoading records a token that is not yet confirmed by the server.
func (s *State) StartLoading(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.loading = true
	s.authenticated = false
	s.user = nil
}

// SetToken stores a freshly issued token. The user is filled in later by
// SetUser.
func (s *State) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.authenticated = true
	s.loading = false
}

func (s *State) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.authenticated = true
	s.loading = false
}

// Clear signs the session out.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.authenticated = false
	s.loading = false
}
