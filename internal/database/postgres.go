// Package database constructs the PostgreSQL handle shared by the
// persistence repositories.
package database

import (
	"context"
	"database/sql"
	"time"

	// PostgreSQL driver, registered under "postgres".
	_ "github.com/lib/pq"

	"github.com/realmforge/catalog-api/internal/errors"
)

// Options configures the database pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open opens a PostgreSQL handle from a DSN and verifies connectivity.
func Open(ctx context.Context, dsn string, opts *Options) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.InvalidArgument("postgres DSN is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres handle")
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach postgres")
	}

	return db, nil
}
