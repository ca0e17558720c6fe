package cli

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an already open App. Commands run
// with such a context use it instead of opening storage themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App in ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
