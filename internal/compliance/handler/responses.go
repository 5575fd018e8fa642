package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"compliscan/internal/compliance/models"
	dErrors "compliscan/pkg/domain-errors"
)

// CheckResponse is the result of one compliance check.
type CheckResponse struct {
	ProfileID    uuid.UUID           `json:"profile_id"`
	BusinessName string              `json:"business_name"`
	Matched      int                 `json:"matched"`
	Regulations  []models.Regulation `json:"regulations"`
}

// OptionsResponse carries the intake enumerations for form rendering.
type OptionsResponse struct {
	States        []string `json:"states"`
	Industries    []string `json:"industries"`
	BusinessTypes []string `json:"business_types"`
}

// SeedResponse reports how many reference records a seed run inserted.
type SeedResponse struct {
	Seeded int `json:"seeded"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError centralizes domain error translation to HTTP responses so every
// handler returns the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := errorResponse{Error: string(code)}
	var de *dErrors.Error
	if errors.As(err, &de) {
		body.Message = de.Message
	}
	writeJSON(w, dErrors.ToHTTPStatus(code), body)
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   string(dErrors.CodeBadRequest),
		Message: "invalid request",
		Fields:  fieldErrors(err),
	})
}
