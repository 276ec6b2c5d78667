// Package diagnostics provides the injectable logging sink used by the
// scanner and parser (spec §6: "the core emits diagnostic lines via an
// opaque logger interface; the logger is injectable; no specific format is
// part of the interface"). The concrete backend is zap; callers outside
// this package never import it directly.
package diagnostics

import "go.uber.org/zap"

// Field is an opaque structured logging field.
type Field = zap.Field

// String builds a string field.
func String(key, val string) Field { return zap.String(key, val) }

// Int builds an int field.
func Int(key string, val int) Field { return zap.Int(key, val) }

// Err builds an error field.
func Err(err error) Field { return zap.Error(err) }

// Logger is the leveled logging interface injected into Scanner and Parser
// construction. Implementations must be safe for use by a single
// scanner/parser instance; the core never shares a Logger across
// concurrent writers without the caller's own synchronization.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// zapLogger adapts *zap.Logger to Logger.
type zapLogger struct {
	l *zap.Logger
}

// NewZap wraps an existing *zap.Logger.
func NewZap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

// NewDevelopment returns a Logger backed by zap's development config
// (human-readable, colorized in a terminal). Falls back to a no-op logger
// if zap cannot initialize (e.g. no writable stderr).
func NewDevelopment() Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return NewNop()
	}
	return &zapLogger{l: l}
}

// NewNop returns a Logger that discards everything. This is the default
// when no logger is injected, per spec §9: "re-architect as a logger value
// passed in at construction; avoid hidden global state."
func NewNop() Logger {
	return &zapLogger{l: zap.NewNop()}
}

func (z *zapLogger) Debug(msg string, fields ...Field) { z.l.Debug(msg, fields...) }
func (z *zapLogger) Info(msg string, fields ...Field)  { z.l.Info(msg, fields...) }
func (z *zapLogger) Warn(msg string, fields ...Field)  { z.l.Warn(msg, fields...) }
func (z *zapLogger) Error(msg string, fields ...Field) { z.l.Error(msg, fields...) }
