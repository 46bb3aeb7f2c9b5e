package logging

import (
	"context"
	"log/slog"
	"strconv"
)

// Logger is what the inchi packages log through. Any slog-backed or test
// implementation can be plugged in.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New wraps l. A nil l logs to slog.Default() as it is at call time.
func New(l *slog.Logger) Logger {
	return sink{l: l}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return sink{l: slog.New(slog.DiscardHandler)}
}

type sink struct {
	l *slog.Logger
}

func (s sink) target() *slog.Logger {
	if s.l == nil {
		return slog.Default()
	}
	return s.l
}

func (s sink) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	s.target().Log(ctx, level, msg, args...)
}

func (s sink) Debug(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelDebug, msg, args)
}

func (s sink) Info(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelInfo, msg, args)
}

func (s sink) Warn(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelWarn, msg, args)
}

func (s sink) Error(ctx context.Context, msg string, args ...any) {
	s.emit(ctx, slog.LevelError, msg, args)
}

func (s sink) With(args ...any) Logger {
	return sink{l: s.target().With(args...)}
}

// Abbrev returns a string attribute holding at most max bytes of value. A cut
// value ends with a marker giving the original length.
func Abbrev(key, value string, max int) slog.Attr {
	if max <= 0 || len(value) <= max {
		return slog.String(key, value)
	}
	return slog.String(key, value[:max]+"...("+strconv.Itoa(len(value))+" bytes)")
}
