package models

import (
	"time"

	"github.com/google/uuid"
)

// Regulation is a reference record describing one compliance rule, its
// applicability conditions, and its requirements and penalties.
//
// Invariants:
//   - ID is immutable once created
//   - An unrestricted criterion means the condition imposes no constraint,
//     never "matches nothing"
//   - A nil numeric bound means unbounded on that side, never zero; bounds
//     are pointers precisely so zero-valued bounds stay representable
//   - ComplianceRequirements preserves its authored order
//
// Regulations are seeded in bulk and treated as read-mostly reference data.
type Regulation struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RegulatoryBody string    `json:"regulatory_body"`

	States        Criterion `json:"applicable_states"`
	Industries    Criterion `json:"applicable_industries"`
	BusinessTypes Criterion `json:"business_types"`

	EmployeeCountMin *int   `json:"employee_count_min,omitempty"`
	EmployeeCountMax *int   `json:"employee_count_max,omitempty"`
	RevenueMin       *int64 `json:"revenue_min,omitempty"`
	RevenueMax       *int64 `json:"revenue_max,omitempty"`

	ComplianceRequirements []string `json:"compliance_requirements"`
	Penalties              string   `json:"penalties"`
	URL                    string   `json:"url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegulationInput is the shape accepted by the bulk seed operation: a
// Regulation before the store assigns identity and timestamps.
type RegulationInput struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	RegulatoryBody string `json:"regulatory_body"`

	States        Criterion `json:"applicable_states"`
	Industries    Criterion `json:"applicable_industries"`
	BusinessTypes Criterion `json:"business_types"`

	EmployeeCountMin *int   `json:"employee_count_min,omitempty"`
	EmployeeCountMax *int   `json:"employee_count_max,omitempty"`
	RevenueMin       *int64 `json:"revenue_min,omitempty"`
	RevenueMax       *int64 `json:"revenue_max,omitempty"`

	ComplianceRequirements []string `json:"compliance_requirements"`
	Penalties              string   `json:"penalties"`
	URL                    string   `json:"url,omitempty"`
}

// IntPtr and Int64Ptr build optional bounds for literal regulation data.
func IntPtr(v int) *int       { return &v }
func Int64Ptr(v int64) *int64 { return &v }
