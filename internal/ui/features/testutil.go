// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/session"
	"github.com/guichet-labs/guichet/internal/shell"
	"github.com/guichet-labs/guichet/internal/testutil"
	"github.com/guichet-labs/guichet/internal/theme"
	"github.com/guichet-labs/guichet/internal/ui/notifier"
)

// TestSecret signs test sessions.
const TestSecret = "test-secret-key-32-bytes-long!!"

// StubProfiles is a ProfileFetcher answering from memory.
type StubProfiles struct {
	Profile auth.Profile
	Err     error
}

// FetchProfile implements auth.ProfileFetcher.
func (s StubProfiles) FetchProfile(context.Context, string) (auth.Profile, error) {
	return s.Profile, s.Err
}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Sessions      *session.Store
	Themes        *theme.Provider
	Auth          *auth.Provider
	States        *shell.Store
	Notifications *notification.MemoryStore
	Notifier      *notifier.Notifier
	Logs          *testutil.Recorder

	t       *testing.T
	cookies []*http.Cookie
}

// SetupTestFixture creates a fixture over the default notification feed.
// A nil profiles skips profile lookups.
func SetupTestFixture(t *testing.T, profiles auth.ProfileFetcher) *TestFixture {
	t.Helper()

	logger, logs := testutil.NewRecorder(t)
	sessions := session.NewCookieStore(TestSecret)
	items, err := notification.DefaultFixture()
	require.NoError(t, err)

	return &TestFixture{
		Sessions:      sessions,
		Themes:        theme.NewProvider(sessions, theme.Light),
		Auth:          auth.NewProvider(sessions, auth.NewDecoder(""), profiles, logger),
		States:        shell.NewStore(),
		Notifications: notification.NewMemoryStore(items),
		Notifier:      notifier.New(),
		Logs:          logs,
		t:             t,
	}
}

// Do sends req through the session, theme and auth middlewares to h,
// carrying the cookies of earlier calls, and keeps the cookies it sets.
func (f *TestFixture) Do(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	f.t.Helper()
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.Sessions.Middleware(f.Themes.Middleware(f.Auth.Middleware(h))).ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		f.keep(c)
	}
	return rec
}

// keep replaces the stored cookie of the same name; the last one set wins.
func (f *TestFixture) keep(c *http.Cookie) {
	for i, have := range f.cookies {
		if have.Name == c.Name {
			f.cookies[i] = c
			return
		}
	}
	f.cookies = append(f.cookies, c)
}

// Session opens the session the fixture's cookies currently carry.
func (f *TestFixture) Session() *session.Session {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range f.cookies {
		req.AddCookie(c)
	}
	return f.Sessions.Open(req)
}

// Token returns an unsigned-verification test token for email and name.
func Token(t *testing.T, email, name string) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Email:            email,
		Name:             name,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("issuer-key"))
	require.NoError(t, err)
	return tok
}

// RequestWithPathParam wraps a request with chi URL params.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// RequestWithTimeout wraps a request with a context timeout.
func RequestWithTimeout(r *http.Request, timeout time.Duration) *http.Request {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	_ = cancel // the timeout releases the context
	return r.WithContext(ctx)
}
