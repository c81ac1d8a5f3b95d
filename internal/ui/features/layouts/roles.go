package layouts

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/guichet-labs/guichet/internal/shell"
	"github.com/guichet-labs/guichet/internal/ui/frame"
)

// Role is the static configuration of one layout shell.
type Role struct {
	// Slug is the URL segment the shell is mounted at.
	Slug        string
	Items       []shell.NavItem
	DefaultItem string
	// Outlet shells render a nested content region for the active item
	// and move the browser URL to the item route on selection.
	Outlet bool
}

// Title returns the display name of the role.
func (r Role) Title() string {
	return cases.Title(language.French).String(r.Slug)
}

// Base returns the endpoint base of the shell.
func (r Role) Base() frame.Endpoints {
	return frame.Endpoints("/" + r.Slug)
}

// Item returns the nav item with id.
func (r Role) Item(id string) (shell.NavItem, bool) {
	return shell.FindItem(r.Items, id)
}

// Administrateur is the administration shell.
func Administrateur() Role {
	return Role{
		Slug:        "administrateur",
		DefaultItem: "dashboard",
		Items: []shell.NavItem{
			{ID: "dashboard", Name: "Tableau de bord", Icon: "home", Route: "/"},
			{ID: "users", Name: "Utilisateurs", Icon: "users", Route: "/users"},
			{ID: "analytics", Name: "Analytiques", Icon: "chart", Route: "/analytics"},
			{ID: "messages", Name: "Messages", Icon: "mail", Route: "/messages"},
			{ID: "calendar", Name: "Calendrier", Icon: "calendar", Route: "/calendar"},
			{ID: "settings", Name: "Paramètres", Icon: "settings", Route: "/settings"},
		},
	}
}

// Caissier is the cashier shell. Its content is an outlet for the
// selected operation.
func Caissier() Role {
	return Role{
		Slug:        "caissier",
		DefaultItem: "encaissement",
		Outlet:      true,
		Items: []shell.NavItem{
			{ID: "encaissement", Name: "Encaissement", Icon: "cash", Route: "/caissier/encaissement"},
			{ID: "ticketing", Name: "Ticketing", Icon: "ticket", Route: "/caissier/ticketing"},
			{ID: "historiques", Name: "Historiques", Icon: "history", Route: "/caissier/historiques"},
		},
	}
}

// Roles returns every shell the dashboard serves.
func Roles() []Role {
	return []Role{Administrateur(), Caissier()}
}
