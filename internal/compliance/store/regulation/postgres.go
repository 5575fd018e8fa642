package regulation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"compliscan/internal/compliance/models"
	"compliscan/pkg/platform/sentinel"
)

// Postgres persists regulations in PostgreSQL. Criterion sets are stored as
// text[] columns where the empty array is the documented sentinel for
// "unrestricted"; a NULL array violates the store contract.
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

// NewPostgres constructs a PostgreSQL-backed regulation store.
func NewPostgres(db *sql.DB, opts ...PostgresOption) *Postgres {
	s := &Postgres{db: db, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

const regulationColumns = `
	id, title, description, regulatory_body,
	applicable_states, applicable_industries, business_types,
	employee_count_min, employee_count_max, revenue_min, revenue_max,
	compliance_requirements, penalties, url, created_at, updated_at`

// Insert appends the batch in a single transaction. Identity and timestamps
// are assigned here; seeding twice duplicates records by contract.
func (s *Postgres) Insert(ctx context.Context, batch []models.RegulationInput) ([]models.Regulation, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin insert regulations: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO regulations (`+regulationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert regulations: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := s.clock()
	inserted := make([]models.Regulation, 0, len(batch))
	for _, in := range batch {
		reg := models.Regulation{
			ID:                     uuid.New(),
			Title:                  in.Title,
			Description:            in.Description,
			RegulatoryBody:         in.RegulatoryBody,
			States:                 in.States,
			Industries:             in.Industries,
			BusinessTypes:          in.BusinessTypes,
			EmployeeCountMin:       in.EmployeeCountMin,
			EmployeeCountMax:       in.EmployeeCountMax,
			RevenueMin:             in.RevenueMin,
			RevenueMax:             in.RevenueMax,
			ComplianceRequirements: in.ComplianceRequirements,
			Penalties:              in.Penalties,
			URL:                    in.URL,
			CreatedAt:              now,
			UpdatedAt:              now,
		}
		_, err := stmt.ExecContext(ctx,
			reg.ID, reg.Title, reg.Description, reg.RegulatoryBody,
			pq.Array(reg.States.Values()), pq.Array(reg.Industries.Values()), pq.Array(reg.BusinessTypes.Values()),
			nullableInt(reg.EmployeeCountMin), nullableInt(reg.EmployeeCountMax),
			nullableInt64(reg.RevenueMin), nullableInt64(reg.RevenueMax),
			pq.Array(reg.ComplianceRequirements), reg.Penalties, nullableString(reg.URL),
			reg.CreatedAt, reg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("insert regulation %q: %w", reg.Title, err)
		}
		inserted = append(inserted, reg)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insert regulations: %w", err)
	}
	return inserted, nil
}

// Candidates applies the coarse categorical pre-filter in SQL and returns
// rows in a stable scan order. The exact matcher refines bounds afterwards;
// this query must never exclude a regulation the matcher would accept. NULL
// criterion arrays are deliberately let through: they must reach the scanner
// so the call fails with ErrMalformedRecord instead of silently dropping the
// row (NULL OR NULL is NULL in SQL, which would otherwise filter it out).
func (s *Postgres) Candidates(ctx context.Context, p models.BusinessProfile) ([]models.Regulation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+regulationColumns+`
		FROM regulations
		WHERE (applicable_states = '{}' OR $1 = ANY(applicable_states) OR applicable_states IS NULL)
		  AND (applicable_industries = '{}' OR $2 = ANY(applicable_industries) OR applicable_industries IS NULL)
		  AND (business_types = '{}' OR $3 = ANY(business_types) OR business_types IS NULL)
		ORDER BY created_at, id
	`, p.State, p.Industry, p.BusinessType)
	if err != nil {
		return nil, fmt.Errorf("query candidate regulations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Regulation
	for rows.Next() {
		reg, err := scanRegulation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan candidate regulations: %w", err)
	}
	if out == nil {
		out = []models.Regulation{}
	}
	return out, nil
}

func scanRegulation(rows *sql.Rows) (models.Regulation, error) {
	var (
		reg                             models.Regulation
		states, industries, types, reqs pq.StringArray
		empMin, empMax, revMin, revMax  sql.NullInt64
		url                             sql.NullString
	)
	err := rows.Scan(
		&reg.ID, &reg.Title, &reg.Description, &reg.RegulatoryBody,
		&states, &industries, &types,
		&empMin, &empMax, &revMin, &revMax,
		&reqs, &reg.Penalties, &url,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return models.Regulation{}, fmt.Errorf("scan regulation row: %w", err)
	}

	// A NULL criterion array is "no data available", not "unrestricted".
	// Failing the whole call beats silently matching on a broken record.
	if states == nil || industries == nil || types == nil {
		return models.Regulation{}, fmt.Errorf("regulation %s has NULL criterion array: %w", reg.ID, sentinel.ErrMalformedRecord)
	}
	if reg.Title == "" {
		return models.Regulation{}, fmt.Errorf("regulation %s has empty title: %w", reg.ID, sentinel.ErrMalformedRecord)
	}

	reg.States = models.CriterionFromSlice(states)
	reg.Industries = models.CriterionFromSlice(industries)
	reg.BusinessTypes = models.CriterionFromSlice(types)
	reg.EmployeeCountMin = intFromNull(empMin)
	reg.EmployeeCountMax = intFromNull(empMax)
	reg.RevenueMin = int64FromNull(revMin)
	reg.RevenueMax = int64FromNull(revMax)
	reg.ComplianceRequirements = []string(reqs)
	if url.Valid {
		reg.URL = url.String
	}
	return reg, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullableString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func int64FromNull(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}
