// Package service orchestrates a compliance check: persist the submitted
// profile, fetch candidate regulations, refine them with the exact matcher.
// Stores are injected as interfaces so the matcher's caller stays free of any
// global connection state and mockable in tests.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks RegulationStore,ProfileStore

import (
	"context"
	"errors"
	"log/slog"

	"compliscan/internal/compliance/matcher"
	"compliscan/internal/compliance/models"
	"compliscan/internal/compliance/store"
	dErrors "compliscan/pkg/domain-errors"
	"compliscan/pkg/platform/sentinel"
)

// RegulationStore is the read/write contract for regulation reference data.
// Candidates may coarse-pre-filter on the categorical conditions but must
// never exclude a regulation the exact matcher would accept.
type RegulationStore interface {
	Candidates(ctx context.Context, p models.BusinessProfile) ([]models.Regulation, error)
	Insert(ctx context.Context, batch []models.RegulationInput) ([]models.Regulation, error)
}

// ProfileStore appends submitted profiles; records are never updated or
// deleted by this system.
type ProfileStore interface {
	Insert(ctx context.Context, p models.BusinessProfile) (models.PersistedProfile, error)
}

// CheckResult is the outcome of one end-to-end compliance check.
type CheckResult struct {
	Profile     models.PersistedProfile
	Regulations []models.Regulation
}

// Service wires the stores to the pure matcher.
type Service struct {
	regulations RegulationStore
	profiles    ProfileStore
	logger      *slog.Logger
}

// New creates a compliance Service.
func New(regulations RegulationStore, profiles ProfileStore, logger *slog.Logger) *Service {
	return &Service{
		regulations: regulations,
		profiles:    profiles,
		logger:      logger,
	}
}

// Check persists the submission for audit history, then matches it against
// the regulation set. The two steps are sequential with no compensating
// transaction: a persisted profile whose match step later fails is an
// accepted, non-fatal outcome. Zero matches is a valid result, not an error.
func (s *Service) Check(ctx context.Context, p models.BusinessProfile) (CheckResult, error) {
	persisted, err := s.profiles.Insert(ctx, p)
	if err != nil {
		return CheckResult{}, dErrors.Wrap(dErrors.CodeUnavailable, "persist business profile", err)
	}

	matched, err := s.FindApplicableRegulations(ctx, p)
	if err != nil {
		return CheckResult{}, err
	}

	s.logger.InfoContext(ctx, "compliance check completed",
		"profile_id", persisted.ID,
		"state", p.State,
		"industry", p.Industry,
		"matched", len(matched),
	)

	return CheckResult{Profile: persisted, Regulations: matched}, nil
}

// FindApplicableRegulations returns exactly the regulations for which the
// applicability predicate holds, in the store's scan order. Repeated calls
// against an unchanged store return the same set. No retry: a store failure
// is terminal for the request and surfaced whole, never as a partial result.
func (s *Service) FindApplicableRegulations(ctx context.Context, p models.BusinessProfile) ([]models.Regulation, error) {
	candidates, err := s.regulations.Candidates(ctx, p)
	if err != nil {
		if errors.Is(err, sentinel.ErrMalformedRecord) {
			return nil, dErrors.Wrap(dErrors.CodeMalformedRecord, "regulation store returned a malformed record", err)
		}
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "query candidate regulations", err)
	}
	return matcher.Filter(p, candidates), nil
}

// Seed bulk-inserts the fixed reference regulation set and returns the number
// of records inserted. Not idempotent: seeding twice duplicates records.
func (s *Service) Seed(ctx context.Context) (int, error) {
	inserted, err := s.regulations.Insert(ctx, store.ReferenceRegulations())
	if err != nil {
		return 0, dErrors.Wrap(dErrors.CodeUnavailable, "seed regulations", err)
	}
	s.logger.InfoContext(ctx, "seeded reference regulations", "count", len(inserted))
	return len(inserted), nil
}
