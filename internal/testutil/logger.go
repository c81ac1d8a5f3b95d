// Package testutil provides logging helpers for tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Entry is one captured log record with its attributes flattened.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

type entries struct {
	mu   sync.Mutex
	list []Entry
}

// Recorder captures log records for assertions and echoes them to t.Log.
type Recorder struct {
	entries *entries
	echo    slog.Handler
	attrs   []slog.Attr
}

// NewRecorder returns a logger backed by a Recorder.
func NewRecorder(t testing.TB) (*slog.Logger, *Recorder) {
	t.Helper()
	r := &Recorder{
		entries: &entries{},
		echo:    NewTestLogger(t).Handler(),
	}
	return slog.New(r), r
}

// Enabled implements slog.Handler.
func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (r *Recorder) Handle(ctx context.Context, rec slog.Record) error {
	attrs := make(map[string]any, len(r.attrs)+rec.NumAttrs())
	for _, a := range r.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	r.entries.mu.Lock()
	r.entries.list = append(r.entries.list, Entry{Level: rec.Level, Message: rec.Message, Attrs: attrs})
	r.entries.mu.Unlock()

	return r.echo.Handle(ctx, rec)
}

// WithAttrs implements slog.Handler.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Recorder{
		entries: r.entries,
		echo:    r.echo.WithAttrs(attrs),
		attrs:   append(append([]slog.Attr{}, r.attrs...), attrs...),
	}
}

// WithGroup implements slog.Handler. Groups are not tracked.
func (r *Recorder) WithGroup(name string) slog.Handler {
	return &Recorder{entries: r.entries, echo: r.echo.WithGroup(name), attrs: r.attrs}
}

// Entries returns the records captured so far.
func (r *Recorder) Entries() []Entry {
	r.entries.mu.Lock()
	defer r.entries.mu.Unlock()
	return append([]Entry(nil), r.entries.list...)
}

// Find returns the last record logged with msg.
func (r *Recorder) Find(msg string) (Entry, bool) {
	list := r.Entries()
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].Message == msg {
			return list[i], true
		}
	}
	return Entry{}, false
}
