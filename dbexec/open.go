package dbexec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"
)

// ErrNoDSN is returned by Open when the configuration has no DSN.
var ErrNoDSN = errors.New("dsn is required")

// Open connects to the database described by cfg and verifies the
// connection. Unless WithLogger is given, statements are logged to stderr
// at cfg.LogLevel.
func Open(ctx context.Context, cfg Config, opts ...Option) (*DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.DSN == "" {
		return nil, ErrNoDSN
	}
	key, _ := canonical(cfg.Dialect)

	pool, err := openPool(key, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	if cfg.MaxOpenConns > 0 {
		pool.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("connect %s: %w", key, err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	defaults := []Option{WithLogger(logger), WithSlowThreshold(cfg.SlowThreshold)}
	return New(pool, key, append(defaults, opts...)...)
}

func openPool(dialect, dsn string) (*sql.DB, error) {
	switch dialect {
	case "postgres", "cockroachdb":
		cfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, err
		}
		return stdlib.OpenDB(*cfg), nil
	case "mysql", "mariadb":
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, err
		}
		cfg.ParseTime = true
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, err
		}
		return sql.OpenDB(connector), nil
	case "sqlserver":
		connector, err := mssql.NewConnector(dsn)
		if err != nil {
			return nil, err
		}
		return sql.OpenDB(connector), nil
	case "sqlite":
		return sql.Open("sqlite", dsn)
	}
	return nil, fmt.Errorf("no driver for dialect %q", dialect)
}
