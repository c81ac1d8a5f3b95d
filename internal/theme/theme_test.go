package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guichet-labs/guichet/internal/session"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Theme
		wantOK bool
	}{
		{"light", Light, true},
		{" Dark ", Dark, true},
		{"sepia", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

func TestTheme_Toggled(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggled())
	assert.Equal(t, Light, Dark.Toggled())
	assert.Equal(t, Light, Light.Toggled().Toggled())
	assert.True(t, Dark.IsDark())
	assert.Contains(t, Dark.Class(), "dark")
}

func TestFromContext_DefaultsToLight(t *testing.T) {
	assert.Equal(t, Light, FromContext(context.Background()))
	assert.Equal(t, Dark, FromContext(WithTheme(context.Background(), Dark)))
}

func TestProvider_ToggleAndMiddleware(t *testing.T) {
	store := session.NewCookieStore("test-secret-key-32-bytes-long!!")
	p := NewProvider(store, Light)

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	rec := httptest.NewRecorder()
	sess := store.Open(req)
	assert.Equal(t, Light, p.Current(sess))
	assert.Equal(t, Dark, p.Toggle(sess))
	require.NoError(t, sess.Save(req, rec))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}

	var seen Theme
	h := p.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), next)

	assert.Equal(t, Dark, seen)
}

func TestProvider_Fallback(t *testing.T) {
	store := session.NewCookieStore("test-secret-key-32-bytes-long!!")
	sess := store.Open(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, Dark, NewProvider(store, Dark).Current(sess))
	assert.Equal(t, Light, NewProvider(store, "neon").Default())
}
