// Package services: services/session_store.go
package services

import "github.com/gin-contrib/sessions"

// GinSessionStore adapts a gin-contrib cookie session to the SessionStore
// interface. Values survive reloads for the lifetime of the session cookie.
type GinSessionStore struct {
	session sessions.Session
}

// NewGinSessionStore wraps the given request session.
func NewGinSessionStore(session sessions.Session) *GinSessionStore {
	return &GinSessionStore{session: session}
}

// Get returns the string stored under key, empty when absent.
func (s *GinSessionStore) Get(key string) string {
	v, _ := s.session.Get(key).(string)
	return v
}

// Set stores value under key. Not durable until Save.
func (s *GinSessionStore) Set(key, value string) {
	s.session.Set(key, value)
}

// Delete removes key. Not durable until Save.
func (s *GinSessionStore) Delete(key string) {
	s.session.Delete(key)
}

// Save writes the session back to the cookie.
func (s *GinSessionStore) Save() error {
	return s.session.Save()
}
