package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"
)

// Pool settings for the read-only mirror. The dataset is read in one query
// per cache refresh, so a small pool is enough.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// Open connects to the mirror database and checks it is reachable.
// The returned Closer releases the pool.
func Open(ctx context.Context, dsn string) (DB, io.Closer, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return NewSQLDB(db), db, nil
}

func prepare(ctx context.Context, db *sql.DB) error {
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// recordRows adapts *sql.Rows to RowScanner.
type recordRows struct {
	rows *sql.Rows
}

func (r *recordRows) Next() bool             { return r.rows.Next() }
func (r *recordRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *recordRows) Err() error             { return r.rows.Err() }
func (r *recordRows) Close() error           { return r.rows.Close() }

type sqlDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mirror: %w", err)
	}
	return &recordRows{rows: rows}, nil
}
