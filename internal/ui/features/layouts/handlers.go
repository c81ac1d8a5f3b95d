package layouts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/guichet-labs/guichet/internal/auth"
	"github.com/guichet-labs/guichet/internal/notification"
	"github.com/guichet-labs/guichet/internal/session"
	"github.com/guichet-labs/guichet/internal/shell"
	"github.com/guichet-labs/guichet/internal/theme"
	"github.com/guichet-labs/guichet/internal/ui/frame"
	"github.com/guichet-labs/guichet/internal/ui/notifier"
	"github.com/guichet-labs/guichet/internal/ui/widgets"
)

// Deps are the collaborators shared by every shell.
type Deps struct {
	Sessions      *session.Store
	Themes        *theme.Provider
	Auth          *auth.Provider
	States        *shell.Store
	Notifications notification.Store
	Notifier      *notifier.Notifier
	Logger        *slog.Logger
	Options       Options
}

// Handlers provides HTTP handlers for one layout shell.
type Handlers struct {
	role          Role
	sessions      *session.Store
	themes        *theme.Provider
	auth          *auth.Provider
	states        *shell.Store
	notifications notification.Store
	notifier      *notifier.Notifier
	opts          Options
	logger        *slog.Logger
	now           func() time.Time
}

// NewHandlers creates a new Handlers instance for role.
func NewHandlers(role Role, deps Deps) *Handlers {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		role:          role,
		sessions:      deps.Sessions,
		themes:        deps.Themes,
		auth:          deps.Auth,
		states:        deps.States,
		notifications: deps.Notifications,
		notifier:      deps.Notifier,
		opts:          deps.Options.withDefaults(),
		logger:        logger.With("shell", role.Slug),
		now:           time.Now,
	}
}

func (h *Handlers) stateKey() string {
	return "shell:" + h.role.Slug
}

// seed restores the visitor's shell from its session snapshot, used when
// the process has no live state for it yet.
func (h *Handlers) seed(sess *session.Session) func() shell.State {
	return func() shell.State {
		st, err := shell.Decode(sess.String(h.stateKey()), h.role.DefaultItem)
		if err != nil {
			h.logger.Debug("discarding stored shell state", "error", err)
		}
		if _, ok := h.role.Item(st.ActiveItem); !ok {
			st.ActiveItem = h.role.DefaultItem
		}
		return st
	}
}

func (h *Handlers) snapshot(sess *session.Session, st shell.State) {
	raw, err := st.Encode()
	if err != nil {
		h.logger.Warn("shell state not storable", "error", err)
		return
	}
	sess.Set(h.stateKey(), raw)
}

func (h *Handlers) view(ctx context.Context, st shell.State, th theme.Theme, a auth.State, toasts []string) View {
	items, err := h.notifications.List(ctx)
	if err != nil {
		h.logger.Error("failed to list notifications", "error", err)
		items = nil
	}
	now := h.now()
	user := userFrom(h.role, a)
	return View{
		Role:          h.role,
		State:         st,
		Theme:         th,
		User:          user,
		Greeting:      shell.Greeting(now, user.Name),
		ShowGreeting:  st.GreetingVisible(now, h.opts.GreetingHideDelay),
		Notifications: items,
		Toasts:        toasts,
		Options:       h.opts,
	}
}

// ShellPage renders the full shell. A page load remounts the shell: open
// panels close and the greeting timer restarts.
func (h *Handlers) ShellPage(w http.ResponseWriter, r *http.Request) {
	item := chi.URLParam(r, "item")
	if item != "" {
		if _, ok := h.role.Item(item); !ok {
			http.NotFound(w, r)
			return
		}
	}

	sess := h.sessions.Get(r)
	now := h.now()
	st := h.states.Update(sess.ID(), h.role.Slug, h.seed(sess), func(st *shell.State) {
		if item != "" {
			st.ActiveItem = item
		}
		st.Notifications.Dismiss()
		st.Profile.Dismiss()
		st.MobileSidebar.Dismiss()
		st.MarkGreetingShown(now)
	})

	v := h.view(r.Context(), st, theme.FromContext(r.Context()), auth.FromContext(r.Context()), sess.Toasts())
	h.snapshot(sess, st)
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := widgets.Component(Page(v)).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// apply runs fn on the visitor's shell state and answers with the
// re-rendered shell. Everything touching the session happens before the
// SSE stream starts, since the stream flushes the headers.
func (h *Handlers) apply(w http.ResponseWriter, r *http.Request, fn func(*shell.State), after func(*datastar.ServerSentEventGenerator) error) {
	sess := h.sessions.Get(r)
	st := h.states.Update(sess.ID(), h.role.Slug, h.seed(sess), fn)

	v := h.view(r.Context(), st, h.themes.Current(sess), h.auth.Resolve(sess), sess.Toasts())
	h.snapshot(sess, st)
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(widgets.Component(Shell(v))); err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if after != nil {
		if err := after(sse); err != nil {
			_ = sse.ConsoleError(err)
		}
	}
}

// ToggleSidebar collapses or expands the desktop sidebar.
func (h *Handlers) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(st *shell.State) { st.ToggleCollapse() }, nil)
}

// ToggleMobileSidebar opens or closes the mobile sidebar overlay.
func (h *Handlers) ToggleMobileSidebar(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(st *shell.State) { st.MobileSidebar.Toggle() }, nil)
}

// SelectItem makes a sidebar item active. Outlet shells also move the
// browser to the item route.
func (h *Handlers) SelectItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.role.Item(chi.URLParam(r, "item"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.logger.Info("navigation", "item", item.ID, "route", item.Route)

	var after func(*datastar.ServerSentEventGenerator) error
	if h.role.Outlet {
		after = func(sse *datastar.ServerSentEventGenerator) error {
			return sse.ExecuteScript("window.history.pushState(null, '', " + strconv.Quote(item.Route) + ")")
		}
	}
	h.apply(w, r, func(st *shell.State) { st.Select(item.ID) }, after)
}

// ToggleTheme flips the visitor theme.
func (h *Handlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := h.themes.Toggle(h.sessions.Get(r))
	h.logger.Debug("theme changed", "theme", next)
	h.apply(w, r, nil, nil)
}

// ToggleNotifications opens or closes the notification panel.
func (h *Handlers) ToggleNotifications(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(st *shell.State) { st.Notifications.Toggle() }, nil)
}

// DismissNotifications closes the notification panel after an outside click.
func (h *Handlers) DismissNotifications(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(st *shell.State) { st.Notifications.Dismiss() }, nil)
}

// SelectNotification marks a notification read and closes the panel.
func (h *Handlers) SelectNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.notifications.MarkRead(r.Context(), id)
	switch {
	case errors.Is(err, notification.ErrNotFound):
		h.logger.Warn("unknown notification clicked", "id", id)
	case err != nil:
		h.logger.Error("failed to mark notification read", "id", id, "error", err)
	default:
		h.logger.Info("notification clicked", "id", id)
		h.notifier.Broadcast(notifier.Feed)
	}
	h.apply(w, r, func(st *shell.State) { st.Notifications.Select() }, nil)
}

// ToggleProfile opens or closes the profile menu.
func (h *Handlers) ToggleProfile(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(st *shell.State) { st.Profile.Toggle() }, nil)
}

// DismissProfile closes the profile menu after an outside click.
func (h *Handlers) DismissProfile(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(st *shell.State) { st.Profile.Dismiss() }, nil)
}

// ProfileAction runs an entry of the profile menu and closes it.
func (h *Handlers) ProfileAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	switch action {
	case frame.ProfileActionProfile, frame.ProfileActionSettings:
		h.logger.Info("profile menu", "action", action)
	case frame.ProfileActionLogout:
		sess := h.sessions.Get(r)
		h.auth.Logout(sess)
		h.logger.Info("logged out")
		h.notifier.Notify(sess.ID(), notifier.Session)
	default:
		http.NotFound(w, r)
		return
	}
	h.apply(w, r, func(st *shell.State) { st.Profile.Select() }, nil)
}

type viewportSignals struct {
	ViewportWidth int `json:"viewportWidth"`
}

// Viewport records the width reported by the browser.
func (h *Handlers) Viewport(w http.ResponseWriter, r *http.Request) {
	var signals viewportSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	crossed := false
	h.apply(w, r, func(st *shell.State) {
		if st.Resize(signals.ViewportWidth) {
			crossed = true
			h.logger.Debug("viewport crossed breakpoint", "width", signals.ViewportWidth, "mobile", st.Viewport.IsMobile())
		}
	}, nil)
	if crossed {
		h.notifier.Notify(h.sessions.Get(r).ID(), notifier.Resize)
	}
}

// ActivityPage moves the recent-notifications table to another page.
func (h *Handlers) ActivityPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil || page < 1 {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	h.apply(w, r, func(st *shell.State) { st.ActivityPage = page }, nil)
}

// ShellUpdates is the long-lived SSE endpoint of a shell page. It hides
// the greeting once its delay elapsed, refreshes the notification menu
// when the feed changes and reloads the page when the visitor's session
// changed elsewhere.
func (h *Handlers) ShellUpdates(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	visitor := sess.ID()
	if err := sess.Save(r, w); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}
	seed := h.seed(sess)

	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe(visitor)
	defer h.notifier.Unsubscribe(updates)

	greeting := time.NewTimer(time.Hour)
	greeting.Stop()
	defer greeting.Stop()
	h.armGreeting(greeting, visitor, seed)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-updates:
			if err := h.sendUpdate(ctx, sse, ev, visitor, seed, greeting); err != nil {
				_ = sse.ConsoleError(err)
			}
		case <-greeting.C:
			if err := h.checkGreeting(sse, greeting, visitor, seed); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// armGreeting schedules the next greeting check, if the greeting hides
// at all.
func (h *Handlers) armGreeting(t *time.Timer, visitor string, seed func() shell.State) {
	st := h.states.Update(visitor, h.role.Slug, seed, nil)
	if left := st.GreetingRemaining(h.now(), h.opts.GreetingHideDelay); left > 0 {
		t.Reset(left)
	}
}

// checkGreeting hides the greeting once its delay elapsed on a desktop
// viewport, and otherwise schedules the next check.
func (h *Handlers) checkGreeting(sse *datastar.ServerSentEventGenerator, t *time.Timer, visitor string, seed func() shell.State) error {
	st := h.states.Update(visitor, h.role.Slug, seed, nil)
	if st.GreetingVisible(h.now(), h.opts.GreetingHideDelay) {
		h.armGreeting(t, visitor, seed)
		return nil
	}
	return sse.PatchElementTempl(widgets.Component(hiddenGreeting()))
}

// sendUpdate catches the stream up with ev. A session change reloads the
// page, which covers every other change.
func (h *Handlers) sendUpdate(ctx context.Context, sse *datastar.ServerSentEventGenerator, ev notifier.Event, visitor string, seed func() shell.State, greeting *time.Timer) error {
	if ev.Has(notifier.Session) {
		return sse.ExecuteScript("window.location.reload()")
	}
	if ev.Has(notifier.Resize) {
		if err := h.checkGreeting(sse, greeting, visitor, seed); err != nil {
			return err
		}
	}
	if !ev.Has(notifier.Feed) {
		return nil
	}
	items, err := h.notifications.List(ctx)
	if err != nil {
		return err
	}
	st := h.states.Update(visitor, h.role.Slug, seed, nil)
	return sse.PatchElementTempl(widgets.Component(frame.NotificationMenu(frame.NavbarProps{
		Base:          h.role.Base(),
		Notifications: items,
		UnreadCeiling: h.opts.UnreadCeiling,
		State:         st,
	})))
}

func hiddenGreeting() g.Node {
	return html.H1(html.ID("greeting"), html.Class("hidden"))
}
