package access

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/ui/features"
	"github.com/guichet-labs/guichet/internal/ui/notifier"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()
	f := features.SetupTestFixture(t, nil)
	return NewHandlers(f.Sessions, f.Auth, f.Notifier, slog.New(f.Logs), "/administrateur"), f
}

func formPost(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLogin_Form(t *testing.T) {
	h, f := setupTestHandlers(t)
	token := features.Token(t, "awa@example.com", "Awa Diallo")

	rec := f.Do(h.Login, formPost("/session/login", url.Values{"token": {token}, "next": {"/caissier/ticketing"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/caissier/ticketing", rec.Header().Get("Location"))
	assert.Equal(t, token, f.Session().String(auth.TokenKey))

	e, ok := f.Logs.Find("logged in")
	require.True(t, ok)
	assert.Equal(t, "awa@example.com", e.Attrs["email"])
}

func TestLogin_Signals(t *testing.T) {
	h, f := setupTestHandlers(t)
	token := features.Token(t, "awa@example.com", "Awa")

	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(`{"token":"`+token+`"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := f.Do(h.Login, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/administrateur", rec.Header().Get("Location"))
	assert.True(t, f.Session().Has(auth.TokenKey))
}

func TestLogin_MalformedTokenEndsLoggedOut(t *testing.T) {
	h, f := setupTestHandlers(t)
	f.Do(h.Login, formPost("/session/login", url.Values{"token": {features.Token(t, "a@b.c", "A")}}))
	require.True(t, f.Session().Has(auth.TokenKey))

	rec := f.Do(h.Login, formPost("/session/login", url.Values{"token": {"garbage"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, f.Session().Has(auth.TokenKey))
	_, ok := f.Logs.Find("login with malformed token")
	assert.True(t, ok)
}

func TestLogout_NotifiesVisitorStreams(t *testing.T) {
	h, f := setupTestHandlers(t)
	f.Do(h.Login, formPost("/session/login", url.Values{"token": {features.Token(t, "a@b.c", "A")}}))

	mine := f.Notifier.Subscribe(f.Session().ID())
	defer f.Notifier.Unsubscribe(mine)
	other := f.Notifier.Subscribe("someone-else")
	defer f.Notifier.Unsubscribe(other)

	rec := f.Do(h.Logout, formPost("/session/logout", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, f.Session().Has(auth.TokenKey))

	select {
	case ev := <-mine:
		assert.Equal(t, notifier.Session, ev)
	case <-time.After(100 * time.Millisecond):
		t.Error("visitor stream was not notified")
	}
	select {
	case ev := <-other:
		t.Errorf("unexpected event %q for another visitor", ev)
	default:
	}
}

func TestTarget(t *testing.T) {
	h := NewHandlers(nil, nil, nil, nil, "/home")

	tests := []struct {
		next string
		want string
	}{
		{"", "/home"},
		{"/caissier", "/caissier"},
		{"/caissier/historiques?page=2", "/caissier/historiques?page=2"},
		{"https://evil.example", "/home"},
		{"//evil.example/x", "/home"},
		{`/\evil.example`, "/home"},
		{"relative", "/home"},
	}
	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.want, h.target(tt.next))
		})
	}
}
