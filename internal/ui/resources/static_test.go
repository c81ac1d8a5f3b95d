//go:build !dev

package resources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		path       string
		wantStatus int
	}{
		{StaticPath("guichet.css"), http.StatusOK},
		{StaticPath("missing.css"), http.StatusNotFound},
	}

	h := Handler()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
			}
		})
	}
}

func TestStaticPath(t *testing.T) {
	assert.Equal(t, "/static/guichet.css", StaticPath("guichet.css"))
}
