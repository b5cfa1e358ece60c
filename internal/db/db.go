// Package db provides PostgreSQL storage for risk assessments.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the assessments table when it does not exist yet.
// Meant for development setups; production deployments run migrations.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY,
			verdict TEXT NOT NULL,
			is_fake BOOLEAN NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			severity TEXT NOT NULL,
			quality_score INT NOT NULL,
			quality_grade TEXT NOT NULL,
			red_flag_score INT NOT NULL,
			job_title TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			company_domain TEXT NOT NULL DEFAULT '',
			job_portal TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT '',
			report JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
