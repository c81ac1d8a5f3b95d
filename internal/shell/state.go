package shell

import (
	"encoding/json"
	"fmt"
	"time"
)

// NavItem is one static sidebar entry.
type NavItem struct {
	ID    string
	Name  string
	Icon  string
	Route string
}

// FindItem returns the entry with id.
func FindItem(items []NavItem, id string) (NavItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return NavItem{}, false
}

// State is the UI state of one layout shell for one visitor.
type State struct {
	Collapsed       bool       `json:"collapsed"`
	ActiveItem      string     `json:"active_item"`
	Notifications   Disclosure `json:"notifications"`
	Profile         Disclosure `json:"profile"`
	MobileSidebar   Disclosure `json:"mobile_sidebar"`
	Viewport        Viewport   `json:"viewport"`
	GreetingShownAt time.Time  `json:"greeting_shown_at"`
	// ActivityPage is the page of the recent-notifications table.
	ActivityPage    int        `json:"activity_page,omitempty"`
}

// NewState returns the initial state of a freshly mounted shell.
func NewState(activeItem string) State {
	return State{ActiveItem: activeItem}
}

// ToggleCollapse switches the sidebar between collapsed and expanded.
func (s *State) ToggleCollapse() {
	s.Collapsed = !s.Collapsed
}

// Geometry returns the layout for the current state.
func (s *State) Geometry() Geometry {
	return GeometryFor(s.Collapsed, s.Viewport)
}

// Select makes id the active item. On mobile the sidebar overlay closes
// after the selection.
func (s *State) Select(id string) {
	s.ActiveItem = id
	if s.Viewport.IsMobile() {
		s.MobileSidebar.Select()
	}
}

// Resize records a new viewport width and reports whether it crossed the
// mobile breakpoint. Leaving mobile closes the overlay so it does not
// reappear on the next narrow resize.
func (s *State) Resize(width int) bool {
	if width < 0 {
		width = 0
	}
	was := s.Viewport.IsMobile()
	s.Viewport.Width = width
	now := s.Viewport.IsMobile()
	if was && !now {
		s.MobileSidebar.Dismiss()
	}
	return was != now
}

// Encode serializes the state for session storage.
func (s State) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode shell state: %w", err)
	}
	return string(b), nil
}

// Decode parses a state produced by Encode. An empty string yields the
// initial state for fallbackItem.
func Decode(raw, fallbackItem string) (State, error) {
	if raw == "" {
		return NewState(fallbackItem), nil
	}
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return NewState(fallbackItem), fmt.Errorf("decode shell state: %w", err)
	}
	if s.ActiveItem == "" {
		s.ActiveItem = fallbackItem
	}
	return s, nil
}
