// Package theme provides the dashboard's light/dark theme context.
//
// The Provider is the only writer: it reads the visitor's preference from
// the session store and persists toggles back to it. Views read the
// resolved theme from the request context.
package theme

import (
	"context"
	"net/http"
	"strings"

	"github.com/guichet-labs/guichet/internal/session"
)

// Theme is a color scheme.
type Theme string

// Supported themes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// SessionKey is the session key the preference is mirrored to.
const SessionKey = "theme"

// Parse converts s to a Theme.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == Dark }

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Class returns the root CSS class for t.
func (t Theme) Class() string {
	if t == Dark {
		return "dark bg-gray-900"
	}
	return "bg-gray-50"
}

type contextKey struct{}

// WithTheme returns a copy of ctx carrying t.
func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the theme carried by ctx, or Light.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(contextKey{}).(Theme); ok {
		return t
	}
	return Light
}

// Provider resolves and persists the visitor theme.
type Provider struct {
	sessions *session.Store
	fallback Theme
}

// NewProvider returns a provider defaulting to fallback for visitors
// without a stored preference.
func NewProvider(sessions *session.Store, fallback Theme) *Provider {
	if fallback != Dark {
		fallback = Light
	}
	return &Provider{sessions: sessions, fallback: fallback}
}

// Default returns the theme used when none is stored.
func (p *Provider) Default() Theme { return p.fallback }

// Current returns the stored theme of sess.
func (p *Provider) Current(sess *session.Session) Theme {
	if t, ok := Parse(sess.String(SessionKey)); ok {
		return t
	}
	return p.fallback
}

// Toggle flips the stored theme of sess and returns the new value. The
// caller saves the session.
func (p *Provider) Toggle(sess *session.Session) Theme {
	next := p.Current(sess).Toggled()
	sess.Set(SessionKey, string(next))
	return next
}

// Middleware places the visitor theme in the request context.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := p.Current(p.sessions.Get(r))
		next.ServeHTTP(w, r.WithContext(WithTheme(r.Context(), t)))
	})
}
