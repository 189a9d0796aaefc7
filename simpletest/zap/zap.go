package zap

import (
	"context"
	"fmt"
	"strings"

	logpkg "github.com/LerianStudio/lib-simpletest/simpletest/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment selects the baseline profile for the diagnostics logger.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config holds the logger initialization inputs. Level is parsed with
// log.ParseLevel; when empty, production defaults to info and the other
// environments to debug.
type Config struct {
	Environment Environment
	Level       string
}

// Logger adapts zap to the log.Logger seam. All output is JSON on stderr:
// stdout carries the check trace and summaries, whose line format is
// normative, so a stray log line there would corrupt the trace.
type Logger struct {
	base  *zap.Logger
	level zap.AtomicLevel
}

var _ logpkg.Logger = (*Logger)(nil)

// New builds a diagnostics logger for the given environment.
func New(cfg Config) (*Logger, error) {
	base, err := baseConfig(cfg.Environment)
	if err != nil {
		return nil, err
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	base.Level = level
	base.DisableStacktrace = true
	base.OutputPaths = []string{"stderr"}
	base.ErrorOutputPaths = []string{"stderr"}

	built, err := base.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{base: built, level: level}, nil
}

func baseConfig(environment Environment) (zap.Config, error) {
	var cfg zap.Config

	switch environment {
	case EnvironmentProduction:
		cfg = zap.NewProductionConfig()
	case EnvironmentDevelopment, EnvironmentLocal:
		cfg = zap.NewDevelopmentConfig()
	default:
		return zap.Config{}, fmt.Errorf("unknown environment %q", environment)
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) == "" {
		if cfg.Environment == EnvironmentProduction {
			return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
		}

		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	parsed, err := logpkg.ParseLevel(cfg.Level)
	if err != nil {
		return zap.AtomicLevel{}, err
	}

	return zap.NewAtomicLevelAt(toZapLevel(parsed)), nil
}

// must makes the nil *Logger and the zero Logger safe to log through.
func (l *Logger) must() *zap.Logger {
	if l == nil || l.base == nil {
		return zap.NewNop()
	}

	return l.base
}

// Log implements log.Logger. When ctx carries an active OpenTelemetry span,
// trace_id and span_id fields are appended so log lines correlate with the
// trace the failed check annotated.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	checked := l.must().Check(toZapLevel(level), msg)
	if checked == nil {
		return
	}

	zapFields := make([]zap.Field, 0, len(fields)+2)
	for _, f := range fields {
		zapFields = append(zapFields, zap.Any(f.Key, f.Value))
	}

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	checked.Write(zapFields...)
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return &Logger{base: l.must().With(zapFields...), level: l.level}
}

// WithGroup returns a child logger that nests subsequent fields under a
// namespace.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) logpkg.Logger {
	return &Logger{base: l.must().With(zap.Namespace(name)), level: l.level}
}

// Enabled reports whether the logger would emit a log at the given level.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.must().Core().Enabled(toZapLevel(level))
}

// SetLevel adjusts the logger's verbosity at runtime. Child loggers created
// with With and WithGroup share the handle, so they follow the change.
func (l *Logger) SetLevel(level logpkg.Level) {
	if l == nil || l.base == nil {
		return
	}

	l.level.SetLevel(toZapLevel(level))
}

// Sync flushes buffered logs, respecting context cancellation.
func (l *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.must().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func toZapLevel(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelInfo:
		return zapcore.InfoLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
