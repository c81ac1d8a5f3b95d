package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guichet-labs/guichet/internal/session"
	"github.com/guichet-labs/guichet/internal/testutil"
)

const testSecret = "test-secret-key-32-bytes-long!!"

func signToken(t *testing.T, key string, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return tok
}

type fakeFetcher struct {
	profile Profile
	err     error
	calls   []string
	during  func()
}

func (f *fakeFetcher) FetchProfile(_ context.Context, email string) (Profile, error) {
	f.calls = append(f.calls, email)
	if f.during != nil {
		f.during()
	}
	return f.profile, f.err
}

func newSession(t *testing.T) (*session.Store, *session.Session) {
	t.Helper()
	store := session.NewCookieStore(testSecret)
	return store, store.Open(httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestDecoder_Unverified(t *testing.T) {
	tok := signToken(t, "someone-elses-key", Claims{Email: "awa@example.com", Name: "Awa"})

	claims, err := NewDecoder("").Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "awa@example.com", claims.Email)
	assert.Equal(t, "Awa", claims.DisplayName())
}

func TestDecoder_Malformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c", "   "} {
		_, err := NewDecoder("").Decode(tok)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", tok)
		assert.True(t, IsMalformed(err))
	}
}

func TestDecoder_Verified(t *testing.T) {
	d := NewDecoder(testSecret)
	require.True(t, d.Verifies())

	good := signToken(t, testSecret, Claims{Email: "a@b.c"})
	_, err := d.Decode(good)
	assert.NoError(t, err)

	forged := signToken(t, "wrong-key", Claims{Email: "a@b.c"})
	_, err = d.Decode(forged)
	assert.ErrorIs(t, err, ErrMalformedToken)

	expired := signToken(t, testSecret, Claims{
		Email:            "a@b.c",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	})
	_, err = d.Decode(expired)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestClaims_DisplayName(t *testing.T) {
	var nilClaims *Claims
	assert.Empty(t, nilClaims.DisplayName())
	assert.Equal(t, "jean", (&Claims{Email: "jean@caisse.fr"}).DisplayName())
	assert.Equal(t, "sub-1", (&Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1"}}).DisplayName())
}

func TestProvider_LoginFetchesProfile(t *testing.T) {
	_, sess := newSession(t)
	fetcher := &fakeFetcher{profile: Profile{"first_name": "Awa"}}
	p := NewProvider(nil, nil, fetcher, testutil.NewTestLogger(t))

	tok := signToken(t, testSecret, Claims{Email: "awa@example.com"})
	state, err := p.Login(context.Background(), sess, tok)
	require.NoError(t, err)

	assert.True(t, state.LoggedIn())
	assert.Equal(t, []string{"awa@example.com"}, fetcher.calls)
	assert.Equal(t, "Awa", state.Profile["first_name"])
	assert.Equal(t, tok, sess.String(TokenKey))

	resolved := p.Resolve(sess)
	assert.Equal(t, "awa@example.com", resolved.User.Email)
	assert.Equal(t, "Awa", resolved.Profile["first_name"])
}

func TestProvider_LoginProfileFailureQueuesToast(t *testing.T) {
	_, sess := newSession(t)
	fetcher := &fakeFetcher{err: ErrProfileUnavailable}
	p := NewProvider(nil, nil, fetcher, nil)

	state, err := p.Login(context.Background(), sess, signToken(t, testSecret, Claims{Email: "x@y.z"}))
	require.NoError(t, err)

	assert.True(t, state.LoggedIn())
	assert.Nil(t, state.Profile)
	assert.Equal(t, []string{ProfileErrorToast}, sess.Toasts())
}

func TestProvider_LoginMalformedEndsLoggedOut(t *testing.T) {
	_, sess := newSession(t)
	p := NewProvider(nil, nil, &fakeFetcher{}, nil)

	good := signToken(t, testSecret, Claims{Email: "x@y.z"})
	_, err := p.Login(context.Background(), sess, good)
	require.NoError(t, err)

	state, err := p.Login(context.Background(), sess, "garbage")
	assert.ErrorIs(t, err, ErrMalformedToken)
	assert.False(t, state.LoggedIn())
	assert.Nil(t, state.User)
	assert.False(t, sess.Has(TokenKey), "storage key removed")
	assert.False(t, sess.Has(profileKey))
}

func TestProvider_ResolveClearsUndecodableToken(t *testing.T) {
	_, sess := newSession(t)
	sess.Set(TokenKey, "definitely.not.valid")
	p := NewProvider(nil, nil, nil, nil)

	state := p.Resolve(sess)

	assert.False(t, state.LoggedIn())
	assert.False(t, sess.Has(TokenKey))
}

// gatedFetcher holds the lookup of one email until release is closed.
type gatedFetcher struct {
	held    string
	started chan struct{}
	release chan struct{}
}

func (f *gatedFetcher) FetchProfile(_ context.Context, email string) (Profile, error) {
	if email == f.held {
		close(f.started)
		<-f.release
	}
	return Profile{"who": email}, nil
}

func TestProvider_SupersededLoginKeepsNewerSession(t *testing.T) {
	store := session.NewCookieStore(testSecret)
	fetcher := &gatedFetcher{
		held:    "first@example.com",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	p := NewProvider(store, nil, fetcher, nil)

	// Both logins come from the same browser.
	seed := httptest.NewRecorder()
	seedReq := httptest.NewRequest(http.MethodGet, "/", nil)
	visitor := store.Open(seedReq)
	visitorID := visitor.ID()
	require.NoError(t, visitor.Save(seedReq, seed))
	cookies := seed.Result().Cookies()

	login := func(token string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPost, "/session/login", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		sess := store.Open(req)
		_, err := p.Login(req.Context(), sess, token)
		if saveErr := sess.Save(req, rec); saveErr != nil {
			return rec, saveErr
		}
		return rec, err
	}

	type result struct {
		rec *httptest.ResponseRecorder
		err error
	}
	firstToken := signToken(t, testSecret, Claims{Email: "first@example.com"})
	secondToken := signToken(t, testSecret, Claims{Email: "second@example.com"})

	firstDone := make(chan result, 1)
	go func() {
		rec, err := login(firstToken)
		firstDone <- result{rec, err}
	}()
	<-fetcher.started

	second, err := login(secondToken)
	require.NoError(t, err)
	close(fetcher.release)
	first := <-firstDone

	assert.ErrorIs(t, first.err, ErrSupersededLogin)
	assert.Empty(t, first.rec.Result().Cookies(), "the older login leaves the cookie alone")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range second.Result().Cookies() {
		req.AddCookie(c)
	}
	sess := store.Open(req)
	resolved := p.Resolve(sess)
	require.True(t, resolved.LoggedIn())
	assert.Equal(t, "second@example.com", resolved.User.Email)
	assert.Equal(t, "second@example.com", resolved.Profile["who"])
	assert.Equal(t, visitorID, sess.ID())
	assert.Empty(t, p.logins, "finished logins are forgotten")
}

func TestProvider_LogoutSupersedesPendingLogin(t *testing.T) {
	_, sess := newSession(t)
	fetcher := &fakeFetcher{profile: Profile{"k": "v"}}
	p := NewProvider(nil, nil, fetcher, nil)
	// The visitor logs out from another tab during the lookup.
	fetcher.during = func() { p.Logout(sess) }

	state, err := p.Login(context.Background(), sess, signToken(t, testSecret, Claims{Email: "a@b.c"}))

	assert.ErrorIs(t, err, ErrSupersededLogin)
	assert.False(t, state.LoggedIn())
	assert.False(t, sess.Has(TokenKey))
}

func TestProvider_ProfileIgnoredForOtherToken(t *testing.T) {
	_, sess := newSession(t)
	p := NewProvider(nil, nil, &fakeFetcher{profile: Profile{"k": "v"}}, nil)

	_, err := p.Login(context.Background(), sess, signToken(t, testSecret, Claims{Email: "a@b.c"}))
	require.NoError(t, err)

	sess.Set(TokenKey, signToken(t, testSecret, Claims{Email: "other@b.c"}))
	assert.Nil(t, p.Resolve(sess).Profile)
}

func TestProvider_Logout(t *testing.T) {
	_, sess := newSession(t)
	p := NewProvider(nil, nil, &fakeFetcher{profile: Profile{"k": "v"}}, nil)
	_, err := p.Login(context.Background(), sess, signToken(t, testSecret, Claims{Email: "a@b.c"}))
	require.NoError(t, err)

	p.Logout(sess)

	assert.False(t, p.Resolve(sess).LoggedIn())
	assert.False(t, sess.Has(TokenKey))
	assert.False(t, sess.Has(profileKey))
	assert.False(t, sess.Has(profileTagKey))
}

func TestProvider_Middleware(t *testing.T) {
	store := session.NewCookieStore(testSecret)
	p := NewProvider(store, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	sess := store.Open(req)
	sess.Set(TokenKey, signToken(t, testSecret, Claims{Email: "mw@example.com"}))
	require.NoError(t, sess.Save(req, rec))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}

	var got State
	h := store.Middleware(p.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	})))
	h.ServeHTTP(httptest.NewRecorder(), next)

	require.True(t, got.LoggedIn())
	assert.Equal(t, "mw@example.com", got.User.Email)
}

func TestProfileClient(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      any
		raw       string
		wantErr   error
		wantField string
	}{
		{
			name:      "found",
			status:    http.StatusOK,
			body:      map[string]any{"message": ProfileFoundMessage, "data": map[string]any{"first_name": "Awa"}},
			wantField: "Awa",
		},
		{
			name:    "not found message",
			status:  http.StatusOK,
			body:    map[string]any{"message": "Citizen not found"},
			wantErr: ErrProfileUnavailable,
		},
		{
			name:    "unexpected shape",
			status:  http.StatusBadGateway,
			raw:     "<html>bad gateway</html>",
			wantErr: ErrProfileUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				var req profileRequest
				_ = json.NewDecoder(r.Body).Decode(&req)
				gotEmail = req.Email

				w.WriteHeader(tt.status)
				if tt.raw != "" {
					_, _ = w.Write([]byte(tt.raw))
					return
				}
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			c := NewProfileClient(srv.URL+"/citizens/byEmail", srv.Client(), time.Second)
			profile, err := c.FetchProfile(context.Background(), "awa@example.com")

			assert.Equal(t, "awa@example.com", gotEmail)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, profile["first_name"])
		})
	}
}

func TestProfileClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewProfileClient(url, nil, 200*time.Millisecond).FetchProfile(context.Background(), "a@b.c")
	assert.Error(t, err)
}
