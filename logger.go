package glyphatlas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so disabled build
// logging never formats its arguments.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(slog.New(discard{}))
}

// SetLogger routes the package's log records to l. The package is silent
// until SetLogger is called; nil makes it silent again.
//
// Builder.Build logs the start and end of a run at [slog.LevelInfo] and one
// record per rendered code at [slog.LevelDebug]:
//
//	glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}
