package regulation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"compliscan/internal/compliance/models"
)

// Clock supplies timestamps; injected for testability.
type Clock func() time.Time

// InMemory keeps regulations in insertion order behind a mutex. It favors
// clarity over performance: the reference set is small and read-mostly.
type InMemory struct {
	mu          sync.RWMutex
	regulations []models.Regulation
	clock       Clock
}

// InMemoryOption configures an InMemory store.
type InMemoryOption func(*InMemory)

// WithClock sets the clock function for testability.
func WithClock(clock Clock) InMemoryOption {
	return func(s *InMemory) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewInMemory constructs an empty in-memory regulation store.
func NewInMemory(opts ...InMemoryOption) *InMemory {
	s := &InMemory{clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Insert appends the batch, assigning identity and timestamps. Seeding is not
// idempotent: inserting the same batch twice duplicates records.
func (s *InMemory) Insert(_ context.Context, batch []models.RegulationInput) ([]models.Regulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
		s.regulations = append(s.regulations, reg)
		inserted = append(inserted, reg)
	}
	return inserted, nil
}

// Candidates returns regulations that pass the coarse categorical pre-filter
// (conditions on state, industry, and business type), in insertion order.
// Numeric bounds are left to the exact matcher: under-filtering is safe here,
// over-filtering would be a correctness bug.
func (s *InMemory) Candidates(_ context.Context, p models.BusinessProfile) ([]models.Regulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Regulation, 0, len(s.regulations))
	for _, reg := range s.regulations {
		if reg.States.Allows(p.State) && reg.Industries.Allows(p.Industry) && reg.BusinessTypes.Allows(p.BusinessType) {
			out = append(out, reg)
		}
	}
	return out, nil
}

// Len reports the number of stored regulations.
func (s *InMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.regulations)
}
