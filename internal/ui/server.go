// Package ui provides the web server of the Guichet dashboard.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/session"
	"github.com/guichet-labs/guichet/internal/shell"
	"github.com/guichet-labs/guichet/internal/theme"
	"github.com/guichet-labs/guichet/internal/ui/features/layouts"
	"github.com/guichet-labs/guichet/internal/ui/notifier"
	"github.com/guichet-labs/guichet/internal/ui/router"
)

// Shell states idle for longer than stateIdle are dropped; their session
// snapshot restores them on the next request.
const (
	stateIdle  = 30 * time.Minute
	sweepEvery = 5 * time.Minute
)

// Server is the dashboard server.
type Server struct {
	port          int
	isDev         bool
	fixture       string
	watch         bool
	logger        *slog.Logger
	sessions      *session.Store
	themes        *theme.Provider
	auth          *auth.Provider
	states        *shell.Store
	notifications notification.Store
	notifier      *notifier.Notifier
	options       layouts.Options
}

// Config holds configuration for the dashboard server.
type Config struct {
	Port          int
	IsDev         bool
	SessionSecret string
	DefaultTheme  theme.Theme
	// TokenSecret enables signature checks on access tokens.
	TokenSecret string
	// Profiles looks up extended user records; nil skips lookups.
	Profiles      auth.ProfileFetcher
	Notifications notification.Store
	// Fixture is the YAML feed reloaded into Notifications when Watch is set.
	Fixture string
	Watch   bool
	Options layouts.Options
	Logger  *slog.Logger
}

// NewServer creates a new dashboard server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	store := cfg.Notifications
	if store == nil {
		items, err := notification.DefaultFixture()
		if err != nil {
			logger.Error("built-in notification feed unavailable", "error", err)
		}
		store = notification.NewMemoryStore(items)
	}

	sessions := session.NewCookieStore(cfg.SessionSecret)
	opts := cfg.Options
	opts.IsDev = cfg.IsDev

	return &Server{
		port:          cfg.Port,
		isDev:         cfg.IsDev,
		fixture:       cfg.Fixture,
		watch:         cfg.Watch && cfg.Fixture != "",
		logger:        logger,
		sessions:      sessions,
		themes:        theme.NewProvider(sessions, cfg.DefaultTheme),
		auth:          auth.NewProvider(sessions, auth.NewDecoder(cfg.TokenSecret), cfg.Profiles, logger.With("component", "auth")),
		states:        shell.NewStore(),
		notifications: store,
		notifier:      notifier.New(),
		options:       opts,
	}
}

// Handler returns the routed handler with the session, theme and auth
// middlewares applied.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
		s.sessions.Middleware,
		s.themes.Middleware,
		s.auth.Middleware,
	)

	if err := router.SetupRoutes(r, router.Deps{
		Shells: layouts.Deps{
			Sessions:      s.sessions,
			Themes:        s.themes,
			Auth:          s.auth,
			States:        s.states,
			Notifications: s.notifications,
			Notifier:      s.notifier,
			Logger:        s.logger,
			Options:       s.options,
		},
		IsDev: s.isDev,
	}); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting dashboard server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchFixture(egctx)
		})
	}

	eg.Go(func() error {
		s.sweepStates(egctx)
		return nil
	})

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down dashboard server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

func (s *Server) sweepStates(ctx context.Context) {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.states.Sweep(stateIdle); n > 0 {
				s.logger.Debug("dropped idle shell states", "count", n)
			}
		}
	}
}

// watchFixture reloads the notification feed when its fixture changes.
// Editors often replace the file, so the directory is watched.
func (s *Server) watchFixture(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(s.fixture)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		s.logger.Error("failed to watch notification fixture", "path", target, "error", err)
		// Don't fail - continue without watching
		<-ctx.Done()
		return nil
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.reloadFixture(ctx, target)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

func (s *Server) reloadFixture(ctx context.Context, path string) {
	items, err := notification.LoadFixture(path)
	if err != nil {
		s.logger.Error("notification fixture reload failed", "error", err)
		return
	}
	if err := s.notifications.Replace(ctx, items); err != nil {
		s.logger.Error("notification feed replace failed", "error", err)
		return
	}
	s.logger.Debug("notification fixture reloaded", "path", path, "count", len(items))
	s.notifier.Broadcast(notifier.Feed)
}
