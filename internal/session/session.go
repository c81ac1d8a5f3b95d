// Package session stores per-visitor dashboard state in a signed cookie.
//
// It is the single source of truth the theme and auth providers and the
// layout shells read from and write to: the server-side counterpart of
// browser local storage.
package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// CookieName is the name of the dashboard session cookie.
const CookieName = "guichet"

const visitorKey = "visitor"

// Store opens visitor sessions.
type Store struct {
	backend sessions.Store
	name    string
}

// New wraps a gorilla sessions store.
func New(backend sessions.Store) *Store {
	return &Store{backend: backend, name: CookieName}
}

// NewCookieStore creates a cookie-backed Store signed with secret.
func NewCookieStore(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.MaxAge(86400 * 30)
	cs.Options.Path = "/"
	cs.Options.HttpOnly = true
	cs.Options.SameSite = http.SameSiteLaxMode
	return New(cs)
}

// Open returns the visitor session for r. A cookie that fails to decode
// (rotated secret, tampering) yields a fresh empty session, never an error
// page: the visitor just starts over.
func (s *Store) Open(r *http.Request) *Session {
	raw, err := s.backend.Get(r, s.name)
	if err != nil || raw == nil {
		raw = sessions.NewSession(s.backend, s.name)
		raw.IsNew = true
	}
	return &Session{raw: raw}
}

type contextKey struct{}

// Middleware opens the visitor session once per request so every reader
// and writer in the handler chain shares the same copy.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.Open(r)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, sess)))
	})
}

// Get returns the session opened by Middleware, or opens one.
func (s *Store) Get(r *http.Request) *Session {
	if sess, ok := r.Context().Value(contextKey{}).(*Session); ok {
		return sess
	}
	return s.Open(r)
}

// Session is one visitor's key/value state.
type Session struct {
	raw   *sessions.Session
	dirty bool
}

// String returns the string stored at key.
func (s *Session) String(key string) string {
	v, _ := s.raw.Values[key].(string)
	return v
}

// ID returns the stable visitor id of the session, assigning one on first
// use. Clearing the session assigns a new id.
func (s *Session) ID() string {
	if id := s.String(visitorKey); id != "" {
		return id
	}
	id := uuid.NewString()
	s.Set(visitorKey, id)
	return id
}

// Has reports whether key is present.
func (s *Session) Has(key string) bool {
	_, ok := s.raw.Values[key]
	return ok
}

// Set stores v at key.
func (s *Session) Set(key, v string) {
	if cur, ok := s.raw.Values[key].(string); ok && cur == v {
		return
	}
	s.raw.Values[key] = v
	s.dirty = true
}

// Delete removes key.
func (s *Session) Delete(key string) {
	if _, ok := s.raw.Values[key]; !ok {
		return
	}
	delete(s.raw.Values, key)
	s.dirty = true
}

// AddToast queues a transient message shown once on the next render.
func (s *Session) AddToast(msg string) {
	s.raw.AddFlash(msg)
	s.dirty = true
}

// Toasts drains the queued transient messages.
func (s *Session) Toasts() []string {
	flashes := s.raw.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	s.dirty = true
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

// Dirty reports whether the session changed since it was opened.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Save writes the session cookie when it changed. It must run before the
// response body is started.
func (s *Session) Save(r *http.Request, w http.ResponseWriter) error {
	if !s.dirty {
		return nil
	}
	if err := s.raw.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.dirty = false
	return nil
}
