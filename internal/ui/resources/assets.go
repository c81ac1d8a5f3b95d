// Package resources provides static asset handling for the UI server.
package resources

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// staticPrefix is the URL path the static directory is mounted at.
const staticPrefix = "/static/"

// Client scripts loaded by every page.
const (
	DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"
	TailwindScript = "https://cdn.tailwindcss.com"
)

// StaticPath returns the URL of a file in the static directory.
func StaticPath(name string) string {
	return staticPrefix + name
}
