//go:build dev

package resources

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
)

// Handler serves the static directory of the source tree, so stylesheet
// edits show on the next page load without a rebuild.
func Handler() http.Handler {
	dir := sourceStaticDir()
	slog.Debug("serving static assets from source tree", "dir", dir)
	server := http.StripPrefix(staticPrefix, http.FileServerFS(os.DirFS(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		server.ServeHTTP(w, r)
	})
}

// sourceStaticDir locates static/ next to this file, whatever the working
// directory of the binary.
func sourceStaticDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return StaticDirectoryPath
	}
	return filepath.Join(filepath.Dir(file), "static")
}
