package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger is the structured logging contract every lib-simpletest package
// logs through. Implementations must be safe for concurrent use, and the
// check trace never flows through it: pass/fail lines and summaries are a
// normative stdout format, loggers carry diagnostics only.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is a log severity. Severity decreases as the numeric value grows:
// a logger configured at some level emits every message whose level is
// numerically less than or equal to it, so LevelInfo passes errors,
// warnings, and info, and suppresses debug.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

// String returns the lowercase name of the level, or "unknown" for values
// outside the defined range.
func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// ParseLevel resolves a level name, case-insensitively. "warning" is
// accepted as an alias for warn.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelError, fmt.Errorf("unknown log level %q", name)
}

// Field is one key/value attribute attached to a log event.
type Field struct {
	Key   string
	Value any
}

// Any creates a field with an arbitrary value. Prefer the typed
// constructors where the value type is known.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates the conventional "error" field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
