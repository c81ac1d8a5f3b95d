package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/guichet-labs/guichet/internal/cli/config"
	"github.com/guichet-labs/guichet/internal/cli/output"
	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/shell"
)

// NotificationsJSONOutput is the JSON shape of notifications list.
type NotificationsJSONOutput struct {
	Items  []notification.Item `json:"items"`
	Unread int                 `json:"unread"`
	Badge  string              `json:"badge"`
}

// NewNotificationsCommand creates the notifications command.
func NewNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inspect the notification feed",
		Long: `Inspect the notification feed the navbar shows.

The feed comes from the configured store: the in-memory store is seeded
from the fixture at every start, the sqlite store keeps read flags.`,
	}
	cmd.PersistentFlags().String("fixture", "", "YAML notification feed")
	cmd.PersistentFlags().String("store", "", "Notification store: memory or sqlite")
	cmd.PersistentFlags().String("sqlite-path", "", "SQLite database of the sqlite store")

	cmd.AddCommand(newNotificationsListCommand())
	cmd.AddCommand(newNotificationsReadCommand())
	return cmd
}

func newNotificationsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications with the unread badge",
		Example: `  guichet notifications list
  guichet notifications list --fixture feed.yaml -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			store, closer, err := openNotifications(cmd.Context(), cmdCtx.Cfg, cmdCtx.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			items, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}
			return renderNotifications(cmdCtx.Renderer, items, cmdCtx.Cfg.Navbar.UnreadCeiling)
		},
	}
}

func newNotificationsReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			if cmdCtx.Cfg.Notifications.Store != config.StoreSQLite {
				cmdCtx.Renderer.Warn("The memory store forgets read flags when this command exits; use --store sqlite")
			}
			store, closer, err := openNotifications(cmd.Context(), cmdCtx.Cfg, cmdCtx.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			return markRead(cmd.Context(), cmdCtx.Renderer, store, args[0])
		},
	}
}

func markRead(ctx context.Context, r *output.Renderer, store notification.Store, id string) error {
	if err := store.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return fmt.Errorf("notification %q not found", id)
		}
		return err
	}
	r.Println(r.Styles().Success.Render("Marked " + id + " as read"))
	return nil
}

func renderNotifications(r *output.Renderer, items []notification.Item, ceiling int) error {
	unread := notification.CountUnread(items)
	badge := shell.BadgeLabel(unread, ceiling)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(NotificationsJSONOutput{Items: items, Unread: unread, Badge: badge})
	}

	styles := r.Styles()
	rows := make([][]string, len(items))
	for i, it := range items {
		state := "non lue"
		if it.Read {
			state = "lue"
		}
		rows[i] = []string{it.ID, string(it.Kind), state, it.Time, it.Message}
	}
	if len(items) == 0 {
		r.Println(styles.Muted.Render("Aucune notification"))
		return nil
	}
	r.Table([]string{"ID", "Type", "Statut", "Heure", "Message"}, rows)
	r.Println("")
	summary := strconv.Itoa(unread) + " non lues"
	if badge != "" {
		summary += " (badge " + badge + ")"
	}
	r.Println(styles.Bold.Render(summary))
	return nil
}
