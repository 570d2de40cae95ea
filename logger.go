package pixed

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports
// false, so callers skip building attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by pixed.
// By default pixed produces no log output. Pass nil to silence it again.
// SetLogger is safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: flood fill cell counts, history eviction, restores
//   - [slog.LevelInfo]: session creation and canvas resizes
//
// Example:
//
//	pixed.SetLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The terminal front end logs through
// it too, so one SetLogger call configures everything.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
