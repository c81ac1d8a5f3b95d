// Package shell holds the UI state of one dashboard rendering context:
// sidebar collapse, active navigation item, navbar panels, viewport and
// the derived geometry the frame components are laid out with.
//
// State is plain data with synchronous, I/O-free transitions. A Store
// owns the live state of every visitor and serializes the transitions
// of concurrent requests; the session cookie only keeps an encoded
// snapshot that seeds the Store when it has no entry for the visitor.
package shell

// MobileBreakpoint is the viewport width, in CSS pixels, below which the
// shell switches to its mobile arrangement.
const MobileBreakpoint = 768

// Viewport is the last browser viewport reported by the client.
type Viewport struct {
	Width int `json:"width"`
}

// IsMobile reports whether the viewport is narrower than MobileBreakpoint.
// An unreported width (zero) renders the desktop arrangement.
func (v Viewport) IsMobile() bool {
	return v.Width > 0 && v.Width < MobileBreakpoint
}
