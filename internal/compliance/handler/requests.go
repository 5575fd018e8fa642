package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"compliscan/internal/compliance/models"
)

// CheckRequest is the intake shape for a compliance check. Intake validates
// presence and bounds only; enumeration membership is a UI concern, and the
// matcher treats unknown values as literal strings.
type CheckRequest struct {
	BusinessName  string `json:"business_name" validate:"required,max=256"`
	State         string `json:"state" validate:"required,max=64"`
	Industry      string `json:"industry" validate:"required,max=64"`
	BusinessType  string `json:"business_type" validate:"required,max=64"`
	EmployeeCount int    `json:"employee_count" validate:"gte=1"`
	AnnualRevenue int64  `json:"annual_revenue" validate:"gte=0"`
}

// Profile converts the validated request into the domain value.
func (r CheckRequest) Profile() models.BusinessProfile {
	return models.BusinessProfile{
		BusinessName:  r.BusinessName,
		State:         r.State,
		Industry:      r.Industry,
		BusinessType:  r.BusinessType,
		EmployeeCount: r.EmployeeCount,
		AnnualRevenue: r.AnnualRevenue,
	}
}

// fieldErrors flattens validator failures into a field -> constraint map for
// the error response body.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
