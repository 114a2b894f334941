// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/glossa/internal/config"
)

// Open opens a MySQL connection using the provided config.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}

	db, err := sqlx.Open("mysql", mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Pinger checks that a backend is reachable.
type Pinger func(ctx context.Context) error

// WaitReady pings until it succeeds or attempts run out.
func WaitReady(ctx context.Context, name string, attempts uint, delay time.Duration, ping Pinger) error {
	if attempts == 0 {
		attempts = 1
	}
	err := retry.Do(
		func() error {
			return ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Warn("waiting for backend", "backend", name, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("%s is not reachable after %d attempts > %w", name, attempts, err)
	}
	return nil
}

// Migrate applies every *.sql file under migrations/ in name order.
// The files must be safe to apply more than once.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob > %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		statements, err := fs.ReadFile(migrations, file)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		if _, err := db.ExecContext(ctx, string(statements)); err != nil {
			return fmt.Errorf("db.ExecContext(%s) > %w", file, err)
		}
		slog.Default().Debug("applied migration", "file", file)
	}
	return nil
}
