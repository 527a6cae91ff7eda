package processor

import "context"

type contextKey string

const dryRunKey contextKey = "dryRun"

// WithDryRun marks ctx so that notifications are formatted but not sent.
func WithDryRun(ctx context.Context, dryRun bool) context.Context {
	return context.WithValue(ctx, dryRunKey, dryRun)
}

// IsDryRun reports whether ctx was marked by WithDryRun.
func IsDryRun(ctx context.Context) bool {
	dryRun, ok := ctx.Value(dryRunKey).(bool)
	return ok && dryRun
}
