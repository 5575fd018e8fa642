package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile is the normalized set of attributes describing the business
// submitting a compliance query.
//
// Invariants:
//   - State, Industry, and BusinessType are present and non-empty before
//     matching is attempted (enforced by intake, not by the matcher)
//   - EmployeeCount >= 1, AnnualRevenue >= 0 (whole dollars)
//   - BusinessName is display-only and never participates in matching
type BusinessProfile struct {
	BusinessName  string `json:"business_name"`
	State         string `json:"state"`
	Industry      string `json:"industry"`
	BusinessType  string `json:"business_type"`
	EmployeeCount int    `json:"employee_count"`
	AnnualRevenue int64  `json:"annual_revenue"`
}

// PersistedProfile is a stored submission. Profiles are append-only: created
// on each submission, never updated or deleted.
type PersistedProfile struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	BusinessProfile
}
