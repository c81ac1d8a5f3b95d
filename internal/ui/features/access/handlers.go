package access

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/session"
	"github.com/guichet-labs/guichet/internal/ui/notifier"
)

// Handlers provides the login and logout endpoints.
type Handlers struct {
	sessions *session.Store
	auth     *auth.Provider
	notifier *notifier.Notifier
	logger   *slog.Logger
	home     string
}

// NewHandlers creates a new Handlers instance. Visitors land on home
// after logging in or out unless the form names another local page.
func NewHandlers(sessions *session.Store, provider *auth.Provider, notify *notifier.Notifier, logger *slog.Logger, home string) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		sessions: sessions,
		auth:     provider,
		notifier: notify,
		logger:   logger,
		home:     home,
	}
}

type loginSignals struct {
	Token string `json:"token"`
	Next  string `json:"next"`
}

// readLogin accepts a classic form post or Datastar signals.
func readLogin(r *http.Request) loginSignals {
	if token := r.FormValue("token"); token != "" {
		return loginSignals{Token: token, Next: r.FormValue("next")}
	}
	var s loginSignals
	_ = datastar.ReadSignals(r, &s)
	return s
}

// Login stores the posted access token. An undecodable token leaves the
// visitor logged out without an error page.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	in := readLogin(r)
	sess := h.sessions.Get(r)

	state, err := h.auth.Login(r.Context(), sess, in.Token)
	switch {
	case auth.IsMalformed(err):
		h.logger.Debug("login with malformed token", "error", err)
	case errors.Is(err, auth.ErrSupersededLogin):
		h.logger.Debug("login superseded by a newer one")
	case err != nil:
		h.logger.Error("login failed", "error", err)
	default:
		h.logger.Info("logged in", "email", state.User.Email)
	}

	h.finish(w, r, sess, in.Next)
}

// Logout clears the token, the user and the profile.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	h.auth.Logout(sess)
	h.logger.Info("logged out")
	h.finish(w, r, sess, r.FormValue("next"))
}

func (h *Handlers) finish(w http.ResponseWriter, r *http.Request, sess *session.Session, next string) {
	visitor := sess.ID()
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}
	h.notifier.Notify(visitor, notifier.Session)
	http.Redirect(w, r, h.target(next), http.StatusSeeOther)
}

// target keeps redirects on this site.
func (h *Handlers) target(next string) string {
	if next == "" || next[0] != '/' || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return h.home
	}
	if u, err := url.Parse(next); err != nil || u.Host != "" {
		return h.home
	}
	return next
}
