package commands

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/guichet-labs/guichet/internal/cli/output"
	"github.com/guichet-labs/guichet/internal/ui"
)

// RouteInfo is one registered route.
type RouteInfo struct {
	Method string `json:"method"`
	Route  string `json:"route"`
}

// NewRoutesCommand creates the routes command.
func NewRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the dashboard routes",
		Long: `List every HTTP route the dashboard serves: the shell pages, the
Datastar actions of each shell, the session endpoints and static assets.`,
		Example: `  # List routes
  guichet routes

  # Output as JSON
  guichet routes -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			routes, err := collectRoutes(cmdCtx.Cfg.Server.Dev)
			if err != nil {
				return err
			}
			return renderRoutes(cmdCtx.Renderer, routes)
		},
	}
}

func collectRoutes(dev bool) ([]RouteInfo, error) {
	h, err := ui.NewServer(ui.Config{IsDev: dev, SessionSecret: "routes"}).Handler()
	if err != nil {
		return nil, err
	}
	mux, ok := h.(chi.Routes)
	if !ok {
		return nil, errors.New("dashboard handler does not expose its routes")
	}

	var routes []RouteInfo
	err = chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		routes = append(routes, RouteInfo{Method: method, Route: route})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Route != routes[j].Route {
			return routes[i].Route < routes[j].Route
		}
		return routes[i].Method < routes[j].Method
	})
	return routes, nil
}

func renderRoutes(r *output.Renderer, routes []RouteInfo) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(routes)
	}
	rows := make([][]string, len(routes))
	for i, rt := range routes {
		rows[i] = []string{rt.Method, rt.Route}
	}
	r.Table([]string{"Method", "Route"}, rows)
	return nil
}
