package notification

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore persists the feed, and its read flags, in SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates an unopened store.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// NewSQLiteStoreWithDB wraps an existing connection.
func NewSQLiteStoreWithDB(db *sql.DB, logger *slog.Logger) *SQLiteStore {
	s := NewSQLiteStore(logger)
	s.db = db
	return s
}

// Open connects to the database at path. Use ":memory:" for tests.
func (s *SQLiteStore) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	s.logger.Debug("notification store opened", "path", path)
	return nil
}

// Close closes the connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Migrate runs all pending migrations.
func (s *SQLiteStore) Migrate() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts items when the table has no rows.
func (s *SQLiteStore) SeedIfEmpty(ctx context.Context, items []Item) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications`).Scan(&n); err != nil {
		return fmt.Errorf("failed to count notifications: %w", err)
	}
	if n > 0 {
		return nil
	}
	return s.Replace(ctx, items)
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]Item, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, message, time_label, kind, read FROM notifications ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []Item
	for rows.Next() {
		var it Item
		var kind string
		if err := rows.Scan(&it.ID, &it.Message, &it.Time, &kind, &it.Read); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		it.Kind = Kind(kind)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return items, nil
}

// MarkRead implements Store.
func (s *SQLiteStore) MarkRead(ctx context.Context, id string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	res, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Replace implements Store.
func (s *SQLiteStore) Replace(ctx context.Context, items []Item) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Rows left at position -1 are no longer in the feed.
	if _, err := tx.ExecContext(ctx, `UPDATE notifications SET position = -1`); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	for i, it := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (id, position, message, time_label, kind, read) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				position = excluded.position,
				message = excluded.message,
				time_label = excluded.time_label,
				kind = excluded.kind,
				read = notifications.read OR excluded.read`,
			it.ID, i, it.Message, it.Time, string(it.Kind), it.Read,
		); err != nil {
			return fmt.Errorf("failed to insert notification %s: %w", it.ID, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM notifications WHERE position < 0`); err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit notifications: %w", err)
	}
	s.logger.Debug("notification feed replaced", "count", len(items))
	return nil
}
