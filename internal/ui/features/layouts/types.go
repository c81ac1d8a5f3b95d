package layouts

import (
	"time"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/shell"
	"github.com/guichet-labs/guichet/internal/theme"
	"github.com/guichet-labs/guichet/internal/ui/frame"
)

// DefaultPageSize is the row count of the recent-notifications table.
const DefaultPageSize = 5

// Options tune the rendering of a shell.
type Options struct {
	// UnreadCeiling defaults to shell.DefaultUnreadCeiling.
	UnreadCeiling int
	// GreetingHideDelay defaults to shell.DefaultGreetingHideDelay.
	GreetingHideDelay time.Duration
	// AccentColor defaults to frame.DefaultAccentColor.
	AccentColor string
	// PageSize defaults to DefaultPageSize.
	PageSize int
	IsDev    bool
}

func (o Options) withDefaults() Options {
	if o.UnreadCeiling <= 0 {
		o.UnreadCeiling = shell.DefaultUnreadCeiling
	}
	if o.GreetingHideDelay <= 0 {
		o.GreetingHideDelay = shell.DefaultGreetingHideDelay
	}
	if o.AccentColor == "" {
		o.AccentColor = frame.DefaultAccentColor
	}
	if o.PageSize <= 0 {
		o.PageSize = DefaultPageSize
	}
	return o
}

// View is everything a shell page renders from.
type View struct {
	Role          Role
	State         shell.State
	Theme         theme.Theme
	User          frame.User
	Greeting      string
	ShowGreeting  bool
	Notifications []notification.Item
	Toasts        []string
	Options       Options
}

// guestUser is shown when no one is logged in.
func guestUser(r Role) frame.User {
	return frame.User{Name: "Invité", Role: r.Title()}
}

// userFrom maps the authenticated claims to the navbar identity. Profile
// fields take precedence over token claims.
func userFrom(r Role, a auth.State) frame.User {
	if !a.LoggedIn() {
		return guestUser(r)
	}
	u := frame.User{
		Name:   a.User.DisplayName(),
		Role:   a.User.Role,
		Avatar: a.User.Avatar,
	}
	if name := profileString(a.Profile, "name", "nom", "full_name"); name != "" {
		u.Name = name
	}
	if avatar := profileString(a.Profile, "avatar", "photo"); avatar != "" {
		u.Avatar = avatar
	}
	if u.Role == "" {
		u.Role = r.Title()
	}
	return u
}

func profileString(p auth.Profile, keys ...string) string {
	for _, k := range keys {
		if v, ok := p[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// pageOf returns the items of page (1-based) and the clamped page number.
func pageOf[T any](items []T, page, size int) ([]T, int, int) {
	total := max((len(items)+size-1)/size, 1)
	page = min(max(page, 1), total)
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end], page, total
}
