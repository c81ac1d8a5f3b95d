package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/cli/config"
	"github.com/guichet-labs/guichet/internal/theme"
	"github.com/guichet-labs/guichet/internal/ui"
	"github.com/guichet-labs/guichet/internal/ui/features/layouts"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Open bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Guichet dashboard",
		Long: `Start the web server hosting the Administrateur and Caissier shells.

The dashboard provides:
- A collapsible sidebar with role navigation
- A navbar with greeting, theme toggle, notifications and profile menu
- Live updates of the notification feed`,
		Example: `  # Start on the default port
  guichet serve

  # Start on a custom port with a watched feed
  guichet serve --port 3000 --fixture feed.yaml

  # Keep read flags across restarts
  guichet serve --store sqlite`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().Int("port", 0, "Port to serve on (default: 5173)")
	cmd.Flags().Bool("watch", true, "Reload the notification fixture when it changes")
	cmd.Flags().Bool("dev", false, "Enable the hot reload endpoint")
	cmd.Flags().String("fixture", "", "YAML notification feed")
	cmd.Flags().String("store", "", "Notification store: memory or sqlite")
	cmd.Flags().String("sqlite-path", "", "SQLite database of the sqlite store")
	cmd.Flags().String("profile-url", "", "Profile lookup endpoint")
	cmd.Flags().String("token-secret", "", "HMAC secret verifying access tokens")
	cmd.Flags().Int("unread-ceiling", 0, "Unread count above which the badge is capped")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open the dashboard in a browser")

	_ = cmd.RegisterFlagCompletionFunc("store", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.StoreMemory, config.StoreSQLite}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg, logger := cmdCtx.Cfg, cmdCtx.Logger

	if cfg.IsDefaultSecret() {
		cmdCtx.Renderer.Warn("Using the development session secret; set GUICHET_SERVER_SESSION_SECRET in production")
	}

	store, closer, err := openNotifications(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open notifications: %w", err)
	}
	defer func() { _ = closer.Close() }()

	var profiles auth.ProfileFetcher
	if cfg.Profile.Endpoint != "" {
		profiles = auth.NewProfileClient(cfg.Profile.Endpoint, nil, cfg.Profile.Timeout)
	}

	defaultTheme, _ := theme.Parse(cfg.Theme.Default)

	server := ui.NewServer(ui.Config{
		Port:          cfg.Server.Port,
		IsDev:         cfg.Server.Dev,
		SessionSecret: cfg.Server.SessionSecret,
		DefaultTheme:  defaultTheme,
		TokenSecret:   cfg.Auth.HMACSecret,
		Profiles:      profiles,
		Notifications: store,
		Fixture:       cfg.Notifications.Fixture,
		Watch:         cfg.Server.Watch,
		Options: layouts.Options{
			UnreadCeiling:     cfg.Navbar.UnreadCeiling,
			GreetingHideDelay: cfg.Navbar.GreetingHideDelay,
			AccentColor:       cfg.Sidebar.AccentColor,
			PageSize:          cfg.Notifications.PageSize,
		},
		Logger: logger,
	})

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	if opts.Open {
		go openBrowser(url)
	}

	cmdCtx.Renderer.Println("Starting dashboard on " + url)
	cmdCtx.Renderer.Println("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
