package log

import "context"

// nopLogger discards everything. It stands in wherever a logger is
// optional, so callers never have to nil-check before logging.
type nopLogger struct{}

var nop Logger = nopLogger{}

// NewNop returns the shared no-op logger.
//
//nolint:ireturn
func NewNop() Logger {
	return nop
}

func (nopLogger) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (nopLogger) With(...Field) Logger { return nop }

//nolint:ireturn
func (nopLogger) WithGroup(string) Logger { return nop }

func (nopLogger) Enabled(Level) bool { return false }

func (nopLogger) Sync(context.Context) error { return nil }
