// Package matcher implements the regulation applicability predicate. It is
// pure and side-effect free: storage and transport concerns live in other
// layers, so the predicate stays trivially safe to call concurrently.
package matcher

import "compliscan/internal/compliance/models"

// Matches reports whether a regulation applies to a business profile.
//
// All conditions are conjunctive; there is no partial match or scoring:
//  1. each categorical criterion (state, industry, business type) is
//     unrestricted or contains the profile's value, and
//  2. employee count and annual revenue fall within the regulation's bounds,
//     where a bound is present. Bounds are inclusive; an absent bound imposes
//     no constraint on that side.
func Matches(p models.BusinessProfile, r models.Regulation) bool {
	if !r.States.Allows(p.State) {
		return false
	}
	if !r.Industries.Allows(p.Industry) {
		return false
	}
	if !r.BusinessTypes.Allows(p.BusinessType) {
		return false
	}
	if r.EmployeeCountMin != nil && p.EmployeeCount < *r.EmployeeCountMin {
		return false
	}
	if r.EmployeeCountMax != nil && p.EmployeeCount > *r.EmployeeCountMax {
		return false
	}
	if r.RevenueMin != nil && p.AnnualRevenue < *r.RevenueMin {
		return false
	}
	if r.RevenueMax != nil && p.AnnualRevenue > *r.RevenueMax {
		return false
	}
	return true
}

// Filter returns exactly the subset of candidates that match the profile,
// preserving candidate order. Zero matches is a valid outcome, reported as an
// empty (non-nil) slice.
func Filter(p models.BusinessProfile, candidates []models.Regulation) []models.Regulation {
	matched := make([]models.Regulation, 0, len(candidates))
	for _, r := range candidates {
		if Matches(p, r) {
			matched = append(matched, r)
		}
	}
	return matched
}
