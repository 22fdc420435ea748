package spec

import (
	"context"
	"log/slog"
)

// Logger is the interface har2oas uses for structured logging.
//
// The interface is minimal yet compatible with popular logging libraries
// including log/slog, zap, and zerolog. It uses variadic key-value pairs for
// structured attributes, following the same convention as log/slog:
//
//	logger.Debug("synthesized schema", "name", "RequestBody", "depth", 3)
//
// Use [NewSlogAdapter] to wrap a standard library slog.Logger:
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	logger := spec.NewSlogAdapter(slog.New(handler))
//
//	result, err := har.Convert(data, har.WithLogger(logger))
type Logger interface {
	// Debug logs at debug level. Use for detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for general operational information.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for potentially harmful situations.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for error conditions.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every
	// log. Useful for adding context that applies to multiple log calls.
	With(attrs ...any) Logger
}

// SlogAdapter adapts a *slog.Logger to the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps a slog.Logger so it satisfies Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (a *SlogAdapter) Debug(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelDebug, msg, attrs...)
}

// Info implements Logger.
func (a *SlogAdapter) Info(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelInfo, msg, attrs...)
}

// Warn implements Logger.
func (a *SlogAdapter) Warn(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelWarn, msg, attrs...)
}

// Error implements Logger.
func (a *SlogAdapter) Error(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelError, msg, attrs...)
}

// With implements Logger.
func (a *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: a.logger.With(attrs...)}
}

// NopLogger returns a Logger that discards everything. It is the default
// for converters constructed without WithLogger.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)     {}
func (nopLogger) Info(string, ...any)      {}
func (nopLogger) Warn(string, ...any)      {}
func (nopLogger) Error(string, ...any)     {}
func (n nopLogger) With(...any) Logger     { return n }
