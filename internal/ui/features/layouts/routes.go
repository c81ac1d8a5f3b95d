// Package layouts provides the role layout shells: Administrateur and
// Caissier, each a sidebar, a navbar and a content region.
package layouts

import (
	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures the page, action and update routes of role.
func SetupRoutes(router chi.Router, role Role, deps Deps) error {
	handlers := NewHandlers(role, deps)

	router.Route("/"+role.Slug, func(r chi.Router) {
		r.Get("/", handlers.ShellPage)
		if role.Outlet {
			r.Get("/{item}", handlers.ShellPage)
		}
		r.Get("/updates", handlers.ShellUpdates)

		r.Post("/sidebar/toggle", handlers.ToggleSidebar)
		r.Post("/sidebar/mobile", handlers.ToggleMobileSidebar)
		r.Post("/nav/{item}", handlers.SelectItem)
		r.Post("/theme/toggle", handlers.ToggleTheme)
		r.Post("/notifications/toggle", handlers.ToggleNotifications)
		r.Post("/notifications/dismiss", handlers.DismissNotifications)
		r.Post("/notifications/{id}", handlers.SelectNotification)
		r.Post("/profile/toggle", handlers.ToggleProfile)
		r.Post("/profile/dismiss", handlers.DismissProfile)
		r.Post("/profile/{action}", handlers.ProfileAction)
		r.Post("/viewport", handlers.Viewport)
		r.Post("/activity/{page}", handlers.ActivityPage)
	})

	return nil
}
