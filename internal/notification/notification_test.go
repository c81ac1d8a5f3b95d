package notification

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountUnread(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  int
	}{
		{"empty", nil, 0},
		{"all read", []Item{{ID: "1", Read: true}, {ID: "2", Read: true}}, 0},
		{"mixed", []Item{{ID: "1"}, {ID: "2", Read: true}, {ID: "3"}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountUnread(tt.items))
		})
	}
}

func defaultItems(t *testing.T) []Item {
	t.Helper()
	items, err := DefaultFixture()
	require.NoError(t, err)
	return items
}

func TestDefaultFixture(t *testing.T) {
	items := defaultItems(t)

	require.Len(t, items, 4)
	assert.Equal(t, 3, CountUnread(items))
	assert.Equal(t, KindSuccess, items[1].Kind)
	assert.Equal(t, "Maintenance programmée ce soir", items[2].Message)
}

func TestParseFixture(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, items []Item)
	}{
		{
			name: "defaults kind and generates ids",
			yaml: "notifications:\n  - message: hello\n",
			check: func(t *testing.T, items []Item) {
				require.Len(t, items, 1)
				assert.NotEmpty(t, items[0].ID)
				assert.Equal(t, KindInfo, items[0].Kind)
			},
		},
		{
			name:    "rejects unknown kind",
			yaml:    "notifications:\n  - id: a\n    type: urgent\n",
			wantErr: "unknown type",
		},
		{
			name:    "rejects duplicate ids",
			yaml:    "notifications:\n  - id: a\n  - id: a\n",
			wantErr: "duplicate id",
		},
		{
			name:    "invalid yaml",
			yaml:    "notifications: [",
			wantErr: "parse notification fixture",
		},
		{
			name: "empty feed",
			yaml: "notifications: []\n",
			check: func(t *testing.T, items []Item) {
				assert.Empty(t, items)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseFixture([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, items)
		})
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notifications:\n  - id: x\n    message: m\n    type: error\n"), 0600))

	items, err := LoadFixture(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, KindError, items[0].Kind)

	_, err = LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(defaultItems(t))

	require.NoError(t, s.MarkRead(ctx, "1"))
	assert.ErrorIs(t, s.MarkRead(ctx, "nope"), ErrNotFound)

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, CountUnread(items))

	// List returns a copy.
	items[0].Message = "changed"
	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again[0].Message)

	require.NoError(t, s.Replace(ctx, nil))
	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFind(t *testing.T) {
	items := defaultItems(t)

	it, ok := Find(items, "2")
	require.True(t, ok)
	assert.Equal(t, KindSuccess, it.Kind)

	_, ok = Find(items, "404")
	assert.False(t, ok)
}
