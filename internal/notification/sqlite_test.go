package notification

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guichet-labs/guichet/internal/testutil"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, s.Open(":memory:"))
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.SeedIfEmpty(ctx, defaultItems(t)))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, defaultItems(t), items, "order and fields survive storage")

	require.NoError(t, s.MarkRead(ctx, "4"))
	assert.ErrorIs(t, s.MarkRead(ctx, "missing"), ErrNotFound)

	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, CountUnread(items))
}

func TestSQLiteStore_SeedIfEmptyKeepsExisting(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Replace(ctx, []Item{{ID: "only", Message: "kept", Kind: KindInfo}}))
	require.NoError(t, s.SeedIfEmpty(ctx, defaultItems(t)))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "kept", items[0].Message)
}

func TestSQLiteStore_FileBacked(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notifications.db")

	s := NewSQLiteStore(nil)
	require.NoError(t, s.Open(path))
	require.NoError(t, s.Migrate())
	require.NoError(t, s.Replace(ctx, defaultItems(t)))
	require.NoError(t, s.MarkRead(ctx, "1"))
	require.NoError(t, s.Close())

	reopened := NewSQLiteStore(nil)
	require.NoError(t, reopened.Open(path))
	t.Cleanup(func() { _ = reopened.Close() })
	require.NoError(t, reopened.Migrate())

	items, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.True(t, items[0].Read, "read flag persists across reopen")
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(nil)

	_, err := s.List(ctx)
	assert.Error(t, err)
	assert.Error(t, s.MarkRead(ctx, "1"))
	assert.Error(t, s.Replace(ctx, nil))
	assert.Error(t, s.Migrate())
	assert.NoError(t, s.Close())
}

func TestSQLiteStore_QueryErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		run       func(s *SQLiteStore) error
		errSubstr string
	}{
		{
			name: "list query fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, message").WillReturnError(errors.New("disk I/O error"))
			},
			run: func(s *SQLiteStore) error {
				_, err := s.List(ctx)
				return err
			},
			errSubstr: "failed to list notifications",
		},
		{
			name: "mark read update fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE notifications").WillReturnError(errors.New("locked"))
			},
			run: func(s *SQLiteStore) error {
				return s.MarkRead(ctx, "1")
			},
			errSubstr: "failed to mark notification read",
		},
		{
			name: "replace rolls back on insert failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE notifications SET position").WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("INSERT INTO notifications").WillReturnError(errors.New("constraint"))
				mock.ExpectRollback()
			},
			run: func(s *SQLiteStore) error {
				return s.Replace(ctx, []Item{{ID: "a", Kind: KindInfo}})
			},
			errSubstr: "failed to insert notification a",
		},
		{
			name: "seed count fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("no table"))
			},
			run: func(s *SQLiteStore) error {
				return s.SeedIfEmpty(ctx, defaultItems(t))
			},
			errSubstr: "failed to count notifications",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			tt.setupMock(mock)
			s := NewSQLiteStoreWithDB(db, nil)

			err = tt.run(s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_ReplaceKeepsReadFlags(t *testing.T) {
	stores := []struct {
		name string
		open func(t *testing.T) Store
	}{
		{"memory", func(*testing.T) Store { return NewMemoryStore(nil) }},
		{"sqlite", func(t *testing.T) Store { return openTestStore(t) }},
	}

	for _, tt := range stores {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := tt.open(t)

			require.NoError(t, s.Replace(ctx, []Item{
				{ID: "a", Message: "Caisse 1 ouverte", Kind: KindInfo},
				{ID: "b", Message: "Fond de caisse bas", Kind: KindWarning},
				{ID: "c", Message: "Clôture faite", Kind: KindSuccess},
			}))
			require.NoError(t, s.MarkRead(ctx, "a"))
			require.NoError(t, s.MarkRead(ctx, "c"))

			// The fixture was edited: "a" reworded, "c" removed, "d" added.
			require.NoError(t, s.Replace(ctx, []Item{
				{ID: "d", Message: "Nouveau ticket", Kind: KindInfo},
				{ID: "a", Message: "Caisse 1 ouverte à 8h", Kind: KindInfo},
				{ID: "b", Message: "Fond de caisse bas", Kind: KindWarning},
			}))

			items, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 3)
			assert.Equal(t, "d", items[0].ID, "new order applies")
			assert.False(t, items[0].Read)
			assert.Equal(t, "Caisse 1 ouverte à 8h", items[1].Message)
			assert.True(t, items[1].Read, "surviving id stays read")
			assert.False(t, items[2].Read)

			// A removed id comes back unread.
			require.NoError(t, s.Replace(ctx, []Item{{ID: "c", Message: "Clôture faite", Kind: KindSuccess}}))
			items, err = s.List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.False(t, items[0].Read)
		})
	}
}
