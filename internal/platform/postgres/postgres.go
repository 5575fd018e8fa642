// Package postgres opens the shared database handle and keeps the schema in
// step. The schema is small enough that idempotent DDL on startup beats a
// migration tool.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS regulations (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	regulatory_body TEXT NOT NULL DEFAULT '',
	applicable_states TEXT[] NOT NULL DEFAULT '{}',
	applicable_industries TEXT[] NOT NULL DEFAULT '{}',
	business_types TEXT[] NOT NULL DEFAULT '{}',
	employee_count_min BIGINT,
	employee_count_max BIGINT,
	revenue_min BIGINT,
	revenue_max BIGINT,
	compliance_requirements TEXT[] NOT NULL DEFAULT '{}',
	penalties TEXT NOT NULL DEFAULT '',
	url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS regulations_scan_order_idx ON regulations (created_at, id);

CREATE TABLE IF NOT EXISTS business_profiles (
	id UUID PRIMARY KEY,
	business_name TEXT NOT NULL,
	state TEXT NOT NULL,
	industry TEXT NOT NULL,
	business_type TEXT NOT NULL,
	employee_count BIGINT NOT NULL,
	annual_revenue BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate applies the idempotent schema DDL.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
