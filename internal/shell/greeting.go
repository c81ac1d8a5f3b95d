package shell

import "time"

// DefaultGreetingHideDelay is how long the navbar greeting stays visible
// on desktop viewports.
const DefaultGreetingHideDelay = 4 * time.Second

// GreetingPrefix returns the salutation for an hour of the day.
// 12 and 18 belong to the later band.
func GreetingPrefix(hour int) string {
	switch {
	case hour < 12:
		return "Bonjour"
	case hour < 18:
		return "Bon après-midi"
	default:
		return "Bonsoir"
	}
}

// Greeting returns the salutation for name at t.
func Greeting(t time.Time, name string) string {
	prefix := GreetingPrefix(t.Hour())
	if name == "" {
		return prefix
	}
	return prefix + " " + name
}

// GreetingVisible reports whether the greeting is still shown at now.
// Mobile viewports always show it.
func (s *State) GreetingVisible(now time.Time, hideAfter time.Duration) bool {
	if s.Viewport.IsMobile() {
		return true
	}
	if s.GreetingShownAt.IsZero() {
		return true
	}
	return now.Sub(s.GreetingShownAt) < hideAfter
}

// GreetingRemaining returns how long the greeting stays visible after now,
// or zero when it is already hidden or never hides.
func (s *State) GreetingRemaining(now time.Time, hideAfter time.Duration) time.Duration {
	if s.Viewport.IsMobile() || s.GreetingShownAt.IsZero() {
		return 0
	}
	left := hideAfter - now.Sub(s.GreetingShownAt)
	if left < 0 {
		return 0
	}
	return left
}

// MarkGreetingShown starts the greeting timer. A page load restarts it,
// matching a remount of the navbar.
func (s *State) MarkGreetingShown(now time.Time) {
	s.GreetingShownAt = now
}
