// Package logger carries a zap logger through context.Context.
//
// The package default is a no-op logger so importing the library never writes
// to stdout on its own; callers opt in with Setup or SetDefault, or attach their
// own logger to a context with WithLogger.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects zap's development config (debug level, console encoding).
	DevelopmentEnvironment = "development"

	// ProductionEnvironment selects zap's production config (info level, JSON encoding).
	ProductionEnvironment = "production"
)

var defaultLogger atomic.Pointer[zap.Logger] //nolint: gochecknoglobals

func init() { //nolint: gochecknoinits
	defaultLogger.Store(zap.NewNop())
}

// New builds a logger for the given environment. Any value other than
// ProductionEnvironment yields a development logger.
func New(environment string) (*zap.Logger, error) {
	if environment == ProductionEnvironment {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// Setup replaces the default logger with one built by New.
func Setup(environment string) error {
	l, err := New(environment)
	if err != nil {
		return err
	}
	SetDefault(l)

	return nil
}

// SetDefault replaces the logger returned for contexts without one. A nil
// logger restores the no-op default.
func SetDefault(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	defaultLogger.Store(l)
}

type key struct{}

// Get returns the logger attached to ctx, or the default logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(key{}).(*zap.Logger); l != nil {
		return l
	}

	return defaultLogger.Load()
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, l)
}

// WithFields returns a copy of ctx whose logger includes fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Slog returns a log/slog logger writing through the zap core attached to ctx.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

// IsDebug reports whether the logger in ctx emits debug entries.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}
