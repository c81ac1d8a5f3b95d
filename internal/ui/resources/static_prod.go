//go:build !dev

package resources

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var embedded embed.FS

// Handler serves the assets compiled into the binary. A release never
// changes them, so browsers may keep them for a year.
func Handler() http.Handler {
	files, err := fs.Sub(embedded, "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	server := http.StripPrefix(staticPrefix, http.FileServerFS(files))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		server.ServeHTTP(w, r)
	})
}
