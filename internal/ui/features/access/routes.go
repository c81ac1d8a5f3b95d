// Package access provides the session endpoints: login with an access
// token and logout.
package access

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/session"
	"github.com/guichet-labs/guichet/internal/ui/notifier"
)

// SetupRoutes configures routes for the access feature.
func SetupRoutes(
	router chi.Router,
	sessions *session.Store,
	provider *auth.Provider,
	notify *notifier.Notifier,
	logger *slog.Logger,
	home string,
) error {
	handlers := NewHandlers(sessions, provider, notify, logger, home)

	router.Post("/session/login", handlers.Login)
	router.Post("/session/logout", handlers.Logout)

	return nil
}
