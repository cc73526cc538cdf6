package suno

import "sync"

// session owns the authentication state: the Clerk session identifier
// obtained once during initialization and the short-lived bearer token that
// is swapped wholesale on every renewal. It implements transport.TokenSource
// so the HTTP pipeline reads the latest token immediately before each send.
type session struct {
	// mu guards id and token.
	mu sync.RWMutex
	// id is the opaque Clerk session identifier.
	id string
	// token is the current bearer token, replaced on every renewal.
	token string
}

// CurrentToken returns the most recently issued bearer token.
func (s *session) CurrentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// setToken atomically replaces the bearer token used for all future requests.
func (s *session) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// sessionID returns the Clerk session identifier, or an empty string before initialization.
func (s *session) sessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.id
}

// setSessionID stores the Clerk session identifier.
func (s *session) setSessionID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = id
}
