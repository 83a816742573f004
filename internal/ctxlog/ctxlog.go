// Package ctxlog carries a slog.Logger through context.Context, so the
// countdown loop and the command executor log through whatever logger their
// run was configured with.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with or replace the
// stored logger.
type key struct{}

var loggerKey = key{}

// WithLogger embeds logger in the returned context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger embedded in ctx, or slog.Default() when
// there is none. Logging must stay usable on every path, including contexts
// that never passed through WithLogger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
