// Package dbexec runs sqltree statements against a database/sql connection,
// logging each statement with log/slog.
package dbexec

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/zoobzio/sqltree"
)

// Statement is any builder that renders for a dialect.
type Statement interface {
	Render(sqltree.Renderer) (*sqltree.QueryResult, error)
}

// DB pairs a connection pool with the renderer for its dialect.
type DB struct {
	db     *sql.DB
	r      sqltree.Renderer
	name   string
	log    *slog.Logger
	slow   time.Duration
	stats  Stats
	closer func() error
}

// Stats counts statements run through a DB.
type Stats struct {
	Statements atomic.Int64
	Slow       atomic.Int64
	Errors     atomic.Int64
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *DB) {
		d.log = l
	}
}

// WithSlowThreshold sets the duration above which a statement is logged as
// slow. Zero disables slow statement logging.
func WithSlowThreshold(t time.Duration) Option {
	return func(d *DB) {
		d.slow = t
	}
}

// New wraps db. dialect names the renderer, as accepted by Dialect.
func New(db *sql.DB, dialect string, opts ...Option) (*DB, error) {
	key, err := canonical(dialect)
	if err != nil {
		return nil, err
	}
	d := &DB{
		db:     db,
		r:      renderers[key](),
		name:   key,
		log:    slog.Default(),
		slow:   200 * time.Millisecond,
		closer: db.Close,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// DB returns the underlying pool.
func (d *DB) DB() *sql.DB { return d.db }

// Renderer returns the dialect renderer statements are rendered with.
func (d *DB) Renderer() sqltree.Renderer { return d.r }

// Dialect returns the canonical dialect name.
func (d *DB) Dialect() string { return d.name }

// Stats returns the statement counters.
func (d *DB) Stats() *Stats { return &d.stats }

// Close closes the pool.
func (d *DB) Close() error { return d.closer() }

// Exec renders and executes a statement that returns no rows.
func (d *DB) Exec(ctx context.Context, stmt Statement) (sql.Result, error) {
	return execOn(ctx, d, d.db, stmt)
}

// Query renders and runs a statement that returns rows.
func (d *DB) Query(ctx context.Context, stmt Statement) (*sql.Rows, error) {
	return queryOn(ctx, d, d.db, stmt)
}

// QueryRow renders and runs a statement expected to return at most one row.
// Render errors are returned directly; query errors are deferred to Scan.
func (d *DB) QueryRow(ctx context.Context, stmt Statement) (*sql.Row, error) {
	result, err := d.render(stmt)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	row := d.db.QueryRowContext(ctx, result.SQL, result.Values()...)
	d.record(ctx, "query", result, start, row.Err())
	return row, nil
}

// ExecAll executes stmts in order inside one transaction, rolling back on
// the first failure.
func (d *DB) ExecAll(ctx context.Context, stmts ...Statement) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		d.stats.Errors.Add(1)
		d.log.ErrorContext(ctx, "begin transaction failed", "dialect", d.name, "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}
	for i, stmt := range stmts {
		if _, err := execOn(ctx, d, tx, stmt); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				d.log.ErrorContext(ctx, "rollback failed", "dialect", d.name, "error", rbErr)
			}
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		d.stats.Errors.Add(1)
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// conn is the subset of *sql.DB and *sql.Tx used to run statements.
type conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func execOn(ctx context.Context, d *DB, c conn, stmt Statement) (sql.Result, error) {
	result, err := d.render(stmt)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res, err := c.ExecContext(ctx, result.SQL, result.Values()...)
	d.record(ctx, "exec", result, start, err)
	return res, err
}

func queryOn(ctx context.Context, d *DB, c conn, stmt Statement) (*sql.Rows, error) {
	result, err := d.render(stmt)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := c.QueryContext(ctx, result.SQL, result.Values()...)
	d.record(ctx, "query", result, start, err)
	return rows, err
}

func (d *DB) render(stmt Statement) (*sqltree.QueryResult, error) {
	if stmt == nil {
		return nil, sqltree.MalformedError{Reason: "nil statement"}
	}
	return stmt.Render(d.r)
}

func (d *DB) record(ctx context.Context, kind string, result *sqltree.QueryResult, start time.Time, err error) {
	duration := time.Since(start)
	d.stats.Statements.Add(1)

	attrs := []any{
		"dialect", d.name,
		"kind", kind,
		"sql", result.SQL,
		"args", len(result.Args),
		"duration", duration,
	}
	if err != nil {
		d.stats.Errors.Add(1)
		d.log.ErrorContext(ctx, "statement failed", append(attrs, "error", err)...)
		return
	}
	if d.slow > 0 && duration > d.slow {
		d.stats.Slow.Add(1)
		d.log.WarnContext(ctx, "slow statement", attrs...)
		return
	}
	d.log.DebugContext(ctx, "statement executed", attrs...)
}
