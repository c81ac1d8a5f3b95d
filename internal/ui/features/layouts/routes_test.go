package layouts

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guichet-labs/guichet/internal/ui/features"
)

func TestSetupRoutes(t *testing.T) {
	f := features.SetupTestFixture(t, nil)
	router := chi.NewRouter()
	deps := Deps{
		Sessions:      f.Sessions,
		Themes:        f.Themes,
		Auth:          f.Auth,
		States:        f.States,
		Notifications: f.Notifications,
		Notifier:      f.Notifier,
		Logger:        slog.New(f.Logs),
	}
	for _, role := range Roles() {
		require.NoError(t, SetupRoutes(router, role, deps))
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/administrateur", http.StatusOK},
		{http.MethodGet, "/administrateur/users", http.StatusNotFound},
		{http.MethodGet, "/caissier", http.StatusOK},
		{http.MethodGet, "/caissier/historiques", http.StatusOK},
		{http.MethodGet, "/caissier/inconnu", http.StatusNotFound},
		{http.MethodPost, "/administrateur/sidebar/toggle", http.StatusOK},
		{http.MethodPost, "/caissier/nav/ticketing", http.StatusOK},
		{http.MethodPost, "/caissier/activity/0", http.StatusBadRequest},
		{http.MethodPost, "/administrateur/profile/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := f.Do(router.ServeHTTP, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRoles(t *testing.T) {
	admin := Administrateur()
	assert.Equal(t, "Administrateur", admin.Title())
	assert.Equal(t, "dashboard", admin.DefaultItem)
	assert.False(t, admin.Outlet)
	assert.Len(t, admin.Items, 6)

	cashier := Caissier()
	assert.True(t, cashier.Outlet)
	item, ok := cashier.Item("historiques")
	require.True(t, ok)
	assert.Equal(t, "/caissier/historiques", item.Route)

	_, ok = cashier.Item("users")
	assert.False(t, ok)
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		page      int
		wantRows  []int
		wantPage  int
		wantTotal int
	}{
		{"first", 1, []int{1, 2, 3}, 1, 3},
		{"last partial", 3, []int{7}, 3, 3},
		{"past the end clamps", 9, []int{7}, 3, 3},
		{"zero clamps", 0, []int{1, 2, 3}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, page, total := pageOf(items, tt.page, 3)
			assert.Equal(t, tt.wantRows, rows)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantTotal, total)
		})
	}

	rows, page, total := pageOf([]int(nil), 1, 3)
	assert.Empty(t, rows)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, total)
}
