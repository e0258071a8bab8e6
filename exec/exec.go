// Package exec runs compiled statements through database/sql.
//
// The SQL text and values produced by a dialect are passed to the driver
// unchanged and in order; exec only adds logging and, for dialects that need
// it, driver specific argument conversion.
package exec

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zoobzio/relq"
	"github.com/zoobzio/relq/config"
)

// DB is the subset of *sql.DB and *sql.Tx used by Runner.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ArgConverter is implemented by dialects whose values need conversion
// before reaching the driver, such as postgres arrays.
type ArgConverter interface {
	Args(values relq.Values) []any
}

// Runner compiles statements with a dialect and executes them on a DB.
type Runner struct {
	db      DB
	dialect relq.Dialect
	logger  *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Runner.
func New(db DB, dialect relq.Dialect, opts ...Option) *Runner {
	r := &Runner{db: db, dialect: dialect, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open opens a database for cfg and returns a Runner for it. The driver for
// cfg's dialect must be registered by the caller.
func Open(cfg *config.Config) (*Runner, *sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	dialect, err := cfg.Dialect()
	if err != nil {
		return nil, nil, err
	}
	driver, err := cfg.DriverName()
	if err != nil {
		return nil, nil, err
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s database: %w", driver, err)
	}
	return New(db, dialect, WithLogger(logger)), db, nil
}

// WithDB returns a copy of r that runs statements on db, typically a
// *sql.Tx.
func (r *Runner) WithDB(db DB) *Runner {
	c := *r
	c.db = db
	return &c
}

// Dialect returns the runner's dialect.
func (r *Runner) Dialect() relq.Dialect {
	return r.dialect
}

// Compile compiles stmt and returns the SQL and driver arguments.
func (r *Runner) Compile(stmt relq.Statement) (string, []any, error) {
	query, values, err := stmt.Build(r.dialect)
	if err != nil {
		r.logger.Error("compile failed",
			zap.String("dialect", r.dialect.Name()),
			zap.Error(err),
		)
		return "", nil, err
	}
	if conv, ok := r.dialect.(ArgConverter); ok {
		return query, conv.Args(values), nil
	}
	return query, values.Args(), nil
}

// Exec compiles and executes stmt.
func (r *Runner) Exec(ctx context.Context, stmt relq.Statement) (sql.Result, error) {
	query, args, err := r.Compile(stmt)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res, err := r.db.ExecContext(ctx, query, args...)
	r.log(query, args, start, err)
	return res, err
}

// Query compiles stmt and runs it as a query.
func (r *Runner) Query(ctx context.Context, stmt relq.Statement) (*sql.Rows, error) {
	query, args, err := r.Compile(stmt)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	r.log(query, args, start, err)
	return rows, err
}

// QueryRow compiles stmt and runs it as a single row query. Errors from
// the query itself surface through Row.Scan.
func (r *Runner) QueryRow(ctx context.Context, stmt relq.Statement) (*sql.Row, error) {
	query, args, err := r.Compile(stmt)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	row := r.db.QueryRowContext(ctx, query, args...)
	r.log(query, args, start, row.Err())
	return row, nil
}

func (r *Runner) log(query string, args []any, start time.Time, err error) {
	fields := []zap.Field{
		zap.String("dialect", r.dialect.Name()),
		zap.String("sql", query),
		zap.Int("args", len(args)),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		r.logger.Error("statement failed", append(fields, zap.Error(err))...)
		return
	}
	r.logger.Debug("statement executed", fields...)
}
