package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/AquaponicsSim_Go/internal/config"
	"github.com/osse101/AquaponicsSim_Go/internal/database"
	"github.com/osse101/AquaponicsSim_Go/internal/database/memory"
	"github.com/osse101/AquaponicsSim_Go/internal/database/postgres"
	"github.com/osse101/AquaponicsSim_Go/internal/database/sqlite"
	"github.com/osse101/AquaponicsSim_Go/internal/repository"
)

// Pinger reports storage connectivity for readiness checks
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the selected match repository with its lifecycle hooks.
// Pinger is nil for in-memory storage.
type Store struct {
	Matches repository.Match
	Pinger  Pinger
	Driver  string
	close   func()
}

// Close releases the underlying connection
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore opens the configured storage driver and brings its schema up
// to date.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	var store *Store

	switch cfg.StorageDriver {
	case config.StorageMemory:
		store = &Store{Matches: memory.NewMatchRepository()}

	case config.StorageSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		store = &Store{
			Matches: repo,
			Pinger:  repo,
			close: func() {
				if err := repo.Close(); err != nil {
					slog.Error(LogMsgStoreCloseFailed, "error", err)
				}
			},
		}

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectPostgres, err)
		}
		if err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigratePostgres, err)
		}
		store = &Store{
			Matches: postgres.NewMatchRepository(pool),
			Pinger:  pool,
			close:   pool.Close,
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}

	store.Driver = cfg.StorageDriver
	slog.Info(LogMsgStorageOpened, "driver", cfg.StorageDriver)
	return store, nil
}
