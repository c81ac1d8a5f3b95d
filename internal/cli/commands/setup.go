package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guichet-labs/guichet/internal/cli/config"
	"github.com/guichet-labs/guichet/internal/cli/output"
	"github.com/guichet-labs/guichet/internal/notification"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config, logger and renderer of cmd.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}, nil
}

// openNotifications opens the configured notification store. The
// returned closer must be called when done.
func openNotifications(ctx context.Context, cfg *config.Config, logger *slog.Logger) (notification.Store, io.Closer, error) {
	var (
		items []notification.Item
		err   error
	)
	if cfg.Notifications.Fixture != "" {
		items, err = notification.LoadFixture(cfg.Notifications.Fixture)
	} else {
		items, err = notification.DefaultFixture()
	}
	if err != nil {
		return nil, nil, err
	}

	if strings.ToLower(cfg.Notifications.Store) != config.StoreSQLite {
		return notification.NewMemoryStore(items), io.NopCloser(nil), nil
	}

	path := cfg.Notifications.SQLitePath
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create notification store directory: %w", err)
		}
	}

	store := notification.NewSQLiteStore(logger)
	if err := store.Open(path); err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	if err := store.SeedIfEmpty(ctx, items); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, store, nil
}
