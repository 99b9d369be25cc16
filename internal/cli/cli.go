// Package cli holds the shared plumbing of the non-interactive commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/juju/fslock"
	"github.com/thenoetrevino/regatta/internal/config"
	"github.com/thenoetrevino/regatta/internal/database"
	"github.com/thenoetrevino/regatta/internal/models"
)

// CLI represents the CLI application context
type CLI struct {
	Store  database.BoatStore
	Config *config.Config
	db     *sql.DB
	dbPath string
}

// NewCLI loads the configuration and opens the registration database.
// A non-empty dbPath wins over REGATTA_DB and the config file.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if dbPath == "" {
		dbPath, err = cfg.ResolveDatabasePath()
		if err != nil {
			return nil, err
		}
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Debug("database opened", "path", dbPath)

	return &CLI{
		Store:  database.NewBoatRepository(db),
		Config: cfg,
		db:     db,
		dbPath: dbPath,
	}, nil
}

// NewCLIWithStore wraps an existing store, for tests and embedding.
func NewCLIWithStore(store database.BoatStore, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{Store: store, Config: cfg}
}

// AcquireWriteLock takes the lock file next to the database so that two
// writers (seed, register) never interleave. The returned func releases it.
// Stores opened with NewCLIWithStore have no file and need no lock.
func (c *CLI) AcquireWriteLock() (func(), error) {
	if c.dbPath == "" || c.dbPath == ":memory:" {
		return func() {}, nil
	}

	lock := fslock.New(c.dbPath + ".lock")
	if err := lock.TryLock(); err != nil {
		slog.Warn("write lock held by another process", "path", c.dbPath, "error", err)
		return nil, WithExitCode(ExitBusy, fmt.Errorf("%w: %s", models.ErrDatabaseBusy, c.dbPath))
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			slog.Error("failed to release write lock", "error", err)
		}
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
