// Package storage opens the history store selected in configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/at-ishikawa/glossa/internal/config"
	"github.com/at-ishikawa/glossa/internal/database"
	"github.com/at-ishikawa/glossa/internal/history"
	"github.com/at-ishikawa/glossa/schemas"
)

// retryDelay is the base delay between startup pings.
var retryDelay = time.Second

// Backend is an opened history store together with its connection lifecycle.
type Backend struct {
	Name  config.StorageBackend
	Store history.Store
	// Ping is nil for backends without a connection.
	Ping  func(ctx context.Context) error
	close func() error
}

// Close releases the backend's connection, if any.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects to the configured backend. Redis and MySQL backends are
// pinged until reachable; MySQL migrations are applied before returning.
func Open(ctx context.Context, cfg config.StorageConfig, dbCfg config.DatabaseConfig) (*Backend, error) {
	slog.Default().Debug("opening storage", "backend", cfg.Backend)

	switch cfg.Backend {
	case config.StorageBackendMemory:
		return &Backend{Name: cfg.Backend, Store: history.NewMemoryStore()}, nil
	case config.StorageBackendFile, "":
		return &Backend{Name: config.StorageBackendFile, Store: history.NewFileStore(cfg.File.Path)}, nil
	case config.StorageBackendRedis:
		client, err := history.NewRedisClient(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("history.NewRedisClient > %w", err)
		}
		return openRedis(ctx, cfg, client)
	case config.StorageBackendMySQL:
		db, err := database.Open(dbCfg)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		return openMySQL(ctx, cfg, db)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

func openRedis(ctx context.Context, cfg config.StorageConfig, client redis.UniversalClient) (*Backend, error) {
	ping := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	if err := database.WaitReady(ctx, "redis", cfg.ConnectAttempts, retryDelay, ping); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("database.WaitReady > %w", err)
	}
	return &Backend{
		Name:  config.StorageBackendRedis,
		Store: history.NewRedisStore(client, cfg.Redis.KeyPrefix),
		Ping:  ping,
		close: client.Close,
	}, nil
}

func openMySQL(ctx context.Context, cfg config.StorageConfig, db *sqlx.DB) (*Backend, error) {
	if err := database.WaitReady(ctx, "mysql", cfg.ConnectAttempts, retryDelay, db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.WaitReady > %w", err)
	}
	if err := database.Migrate(ctx, db, schemas.Migrations); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Migrate > %w", err)
	}
	return &Backend{
		Name:  config.StorageBackendMySQL,
		Store: history.NewDBStore(db),
		Ping:  db.PingContext,
		close: db.Close,
	}, nil
}
