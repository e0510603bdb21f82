package ggfx

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that discards all records.
// Enabled reports false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggfx and all its sub-packages.
// By default ggfx produces no log output.
//
// The logger is also handed to gg so that accelerator and canvas messages
// end up in the same place. Pass nil to restore silent behavior.
//
// Log levels used by ggfx:
//   - [slog.LevelDebug]: per-frame diagnostics (frame rate, lease state)
//   - [slog.LevelInfo]: lifecycle events (host started, canvas created)
//   - [slog.LevelWarn]: non-fatal issues (lease failure, resize failure)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
		loggerPtr.Store(l)
		gg.SetLogger(nil)
		return
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
