package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"compliscan/internal/compliance/models"
)

// Clock supplies timestamps; injected for testability.
type Clock func() time.Time

// InMemory keeps submitted profiles in insertion order behind a mutex.
// Profiles are append-only: no update or delete surface exists.
type InMemory struct {
	mu       sync.RWMutex
	profiles []models.PersistedProfile
	clock    Clock
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

// NewInMemory constructs an empty in-memory profile store.
func NewInMemory(opts ...InMemoryOption) *InMemory {
	s := &InMemory{clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Insert appends a new profile record and returns the persisted copy.
func (s *InMemory) Insert(_ context.Context, p models.BusinessProfile) (models.PersistedProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted := models.PersistedProfile{
		ID:              uuid.New(),
		CreatedAt:       s.clock(),
		BusinessProfile: p,
	}
	s.profiles = append(s.profiles, persisted)
	return persisted, nil
}

// All returns the stored submissions in insertion order.
func (s *InMemory) All() []models.PersistedProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PersistedProfile, len(s.profiles))
	copy(out, s.profiles)
	return out
}
