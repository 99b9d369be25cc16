package cli

import (
	"context"
	"errors"
)

type contextKey struct{}

// WithCLI stores c in ctx for the subcommands.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("no command context")
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, errors.New("CLI not initialized")
	}
	return c, nil
}
