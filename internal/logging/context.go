package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey keys the command logger that commands hand down to the batch
// runner and the watcher.
type ctxKey int

const loggerKey ctxKey = 0

// FromContext returns the logger attached by WithLogger. A nil ctx, or one
// without a logger, yields Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, _ := ctx.Value(loggerKey).(*log.Logger); l != nil {
			return l
		}
	}
	return Default()
}

// WithLogger attaches l to ctx. A nil ctx starts from context.Background.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}
