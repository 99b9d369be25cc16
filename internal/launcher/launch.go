// Package launcher runs the interactive registration table.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/tui"
)

// Launch starts the TUI on the CLI's store and configuration. It returns
// when the user quits or ctx is cancelled.
func Launch(ctx context.Context, c *cli.CLI, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	model := tui.New(ctx, c.Store, c.Config, logger)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	logger.Info("starting table")
	_, err := p.Run()
	switch {
	case err == nil:
		logger.Info("table closed")
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		logger.Info("shutdown signal received, table closed")
		return nil
	default:
		return fmt.Errorf("error running program: %w", err)
	}
}
