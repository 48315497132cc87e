// Package authstate holds the client-side "current authenticated user" in an
// explicit store with subscribe/update semantics instead of ambient globals.
// API clients construct one Store and pass it to whatever needs identity.
package authstate

import (
	"sync"
	"time"
)

// Session is the current authenticated identity, zero-valued when logged out.
type Session struct {
	UserID string
	Token  string
	Expiry time.Time
}

// LoggedIn reports whether the session carries an unexpired token.
func (s Session) LoggedIn() bool {
	return s.Token != "" && time.Now().Before(s.Expiry)
}

// Store is a concurrency-safe container for the current session.
type Store struct {
	mu        sync.Mutex
	session   Session
	listeners []func(Session)
}

// NewStore creates an empty (logged-out) Store.
func NewStore() *Store {
	return &Store{}
}

// Login replaces the current session and notifies subscribers.
func (s *Store) Login(userID, token string, expiry time.Time) {
	s.update(Session{UserID: userID, Token: token, Expiry: expiry})
}

// Logout clears the session and notifies subscribers.
func (s *Store) Logout() {
	s.update(Session{})
}

// Current returns the session at this moment.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Subscribe registers a callback invoked on every session change. Callbacks
// run synchronously on the updating goroutine.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) update(next Session) {
	s.mu.Lock()
	s.session = next
	listeners := make([]func(Session), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}
