package shell

import "strconv"

// Frame dimensions in CSS pixels.
const (
	SidebarWidthExpanded  = 256
	SidebarWidthCollapsed = 64
	NavbarHeight          = 64
)

// Geometry is the pixel layout the navbar and content region are
// positioned with.
type Geometry struct {
	// SidebarWidth is the rendered sidebar width.
	SidebarWidth int
	// NavbarOffset is the left offset of the navbar. On mobile the
	// sidebar is an overlay and the navbar spans the full width.
	NavbarOffset int
	NavbarHeight int
}

// GeometryFor computes the layout for a collapse state and viewport.
// Mobile viewports always render the sidebar expanded.
func GeometryFor(collapsed bool, vp Viewport) Geometry {
	if vp.IsMobile() {
		return Geometry{
			SidebarWidth: SidebarWidthExpanded,
			NavbarOffset: 0,
			NavbarHeight: NavbarHeight,
		}
	}

	width := SidebarWidthExpanded
	if collapsed {
		width = SidebarWidthCollapsed
	}
	return Geometry{
		SidebarWidth: width,
		NavbarOffset: width,
		NavbarHeight: NavbarHeight,
	}
}

// NavbarWidthCSS returns the CSS width expression of the navbar.
func (g Geometry) NavbarWidthCSS() string {
	if g.NavbarOffset == 0 {
		return "100%"
	}
	return "calc(100% - " + strconv.Itoa(g.NavbarOffset) + "px)"
}

// NavbarStyle returns the inline style positioning the navbar.
func (g Geometry) NavbarStyle() string {
	return "width: " + g.NavbarWidthCSS() + "; height: " + strconv.Itoa(g.NavbarHeight) + "px"
}

// SidebarStyle returns the inline style sizing the sidebar.
func (g Geometry) SidebarStyle() string {
	return "width: " + strconv.Itoa(g.SidebarWidth) + "px"
}

// ContentStyle returns the inline style of the main content region.
func (g Geometry) ContentStyle() string {
	return "margin-top: " + strconv.Itoa(g.NavbarHeight) + "px; margin-left: " + strconv.Itoa(g.NavbarOffset) + "px"
}
