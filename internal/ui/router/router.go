// Package router sets up HTTP routes for the dashboard server.
package router

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	accessFeature "github.com/guichet-labs/guichet/internal/ui/features/access"
	layoutsFeature "github.com/guichet-labs/guichet/internal/ui/features/layouts"
	"github.com/guichet-labs/guichet/internal/ui/resources"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Shells layoutsFeature.Deps
	IsDev  bool
}

// HomePath is where the root path and the session endpoints send visitors.
func HomePath() string {
	return string(layoutsFeature.Administrateur().Base())
}

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(router chi.Router, deps Deps) error {
	// Hot reload endpoint for dev mode
	if deps.IsDev {
		setupReload(router)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	home := HomePath()
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, home, http.StatusFound)
	})

	for _, role := range layoutsFeature.Roles() {
		if err := layoutsFeature.SetupRoutes(router, role, deps.Shells); err != nil {
			return err
		}
	}

	s := deps.Shells
	if err := accessFeature.SetupRoutes(router, s.Sessions, s.Auth, s.Notifier, s.Logger, home); err != nil {
		return err
	}

	return nil
}

func setupReload(router chi.Router) {
	reloadChan := make(chan struct{}, 1)
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		select {
		case reloadChan <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
