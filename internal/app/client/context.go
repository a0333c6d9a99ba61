package client

import (
	"context"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying the app, for handing it to cobra
// subcommands without an import cycle.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

func AppFromContext(ctx context.Context) (*App, bool) {
	app, ok := ctx.Value(appKey).(*App)
	return app, ok
}
