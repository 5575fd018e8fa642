// Package handler is the thin HTTP layer over the compliance service. It
// decodes and validates intake, delegates to the service, and translates
// domain errors to HTTP so transport concerns stay out of business logic.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"compliscan/internal/compliance/models"
	"compliscan/internal/compliance/service"
	"compliscan/internal/platform/metrics"
	"compliscan/internal/platform/middleware"
	dErrors "compliscan/pkg/domain-errors"
)

// Service defines the compliance operations the handler exposes.
type Service interface {
	Check(ctx context.Context, p models.BusinessProfile) (service.CheckResult, error)
	Seed(ctx context.Context) (int, error)
}

// Config carries the transport-level settings the handler needs.
type Config struct {
	// AdminToken guards POST /v1/admin/seed when non-empty.
	AdminToken string
	// CORSOrigins lists browser origins allowed to call the API.
	CORSOrigins []string
}

// Handler handles compliance endpoints.
type Handler struct {
	logger   *slog.Logger
	service  Service
	metrics  *metrics.Metrics
	validate *validator.Validate
	cfg      Config
}

// New creates a compliance Handler.
func New(svc Service, logger *slog.Logger, m *metrics.Metrics, cfg Config) *Handler {
	return &Handler{
		logger:   logger,
		service:  svc,
		metrics:  m,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// Register registers the compliance routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	sub := chi.NewRouter()
	sub.Use(middleware.Recovery(h.logger))
	sub.Use(middleware.RequestID)
	sub.Use(middleware.Logger(h.logger))
	sub.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Token", "X-Request-ID"},
	}))
	sub.Use(middleware.ContentTypeJSON)
	sub.Use(middleware.Latency(h.metrics))

	sub.Post("/v1/compliance/check", h.handleCheck)
	sub.Get("/v1/compliance/options", h.handleOptions)

	sub.Group(func(admin chi.Router) {
		if h.cfg.AdminToken != "" {
			admin.Use(middleware.RequireAdminToken(h.cfg.AdminToken, h.logger))
		}
		admin.Post("/v1/admin/seed", h.handleSeed)
	})

	r.Mount("/", sub)
}

// handleCheck persists the submission and returns the applicable regulations.
func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid check request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		writeError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "check request failed validation",
			"request_id", requestID,
			"error", err.Error(),
		)
		writeValidationError(w, err)
		return
	}

	h.metrics.ChecksTotal.Inc()

	result, err := h.service.Check(ctx, req.Profile())
	if err != nil {
		h.metrics.CheckFailures.Inc()
		h.logger.ErrorContext(ctx, "compliance check failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	h.metrics.MatchedPerCheck.Observe(float64(len(result.Regulations)))

	writeJSON(w, http.StatusOK, CheckResponse{
		ProfileID:    result.Profile.ID,
		BusinessName: result.Profile.BusinessName,
		Matched:      len(result.Regulations),
		Regulations:  result.Regulations,
	})
}

// handleOptions serves the intake enumerations for form rendering.
func (h *Handler) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{
		States:        models.USStates,
		Industries:    models.Industries,
		BusinessTypes: models.BusinessTypes,
	})
}

// handleSeed bulk-inserts the reference regulation set. Not idempotent:
// seeding twice duplicates records, an accepted limitation of this
// administrative utility.
func (h *Handler) handleSeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.service.Seed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "seed failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	h.metrics.RegulationsSeeded.Add(float64(count))
	writeJSON(w, http.StatusCreated, SeedResponse{Seeded: count})
}
