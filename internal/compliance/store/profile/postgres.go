package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"compliscan/internal/compliance/models"
)

// Postgres persists profile submissions in PostgreSQL.
type Postgres struct {
	db    *sql.DB
	clock Clock
}

// PostgresOption configures a Postgres store.
type PostgresOption func(*Postgres)

// WithPostgresClock sets the clock function for testability.
func WithPostgresClock(clock Clock) PostgresOption {
	return func(s *Postgres) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB, opts ...PostgresOption) *Postgres {
	s := &Postgres{db: db, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Insert appends a new profile record. Submissions are audit history: there
// is deliberately no update or delete.
func (s *Postgres) Insert(ctx context.Context, p models.BusinessProfile) (models.PersistedProfile, error) {
	persisted := models.PersistedProfile{
		ID:              uuid.New(),
		CreatedAt:       s.clock(),
		BusinessProfile: p,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO business_profiles (id, business_name, state, industry, business_type, employee_count, annual_revenue, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, persisted.ID, p.BusinessName, p.State, p.Industry, p.BusinessType, p.EmployeeCount, p.AnnualRevenue, persisted.CreatedAt)
	if err != nil {
		return models.PersistedProfile{}, fmt.Errorf("insert business profile: %w", err)
	}
	return persisted, nil
}
