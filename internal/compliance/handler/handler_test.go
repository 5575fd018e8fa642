package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliscan/internal/compliance/handler"
	"compliscan/internal/compliance/models"
	"compliscan/internal/compliance/service"
	profilestore "compliscan/internal/compliance/store/profile"
	regulationstore "compliscan/internal/compliance/store/regulation"
	"compliscan/internal/platform/metrics"
	dErrors "compliscan/pkg/domain-errors"
	"compliscan/pkg/testutil"
)

func newTestHandler(t *testing.T, cfg handler.Config) (http.Handler, *service.Service) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(regulationstore.NewInMemory(), profilestore.NewInMemory(), log)
	h := handler.New(svc, log, metrics.New(prometheus.NewRegistry()), cfg)
	r := chi.NewRouter()
	h.Register(r)
	return r, svc
}

func checkBody() map[string]any {
	return map[string]any{
		"business_name":  "Golden Gate Goods",
		"state":          "California",
		"industry":       "Retail",
		"business_type":  "LLC",
		"employee_count": 5,
		"annual_revenue": 30_000_000,
	}
}

func TestHandleCheck(t *testing.T) {
	router, svc := newTestHandler(t, handler.Config{})
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/compliance/check", checkBody()))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := testutil.UnmarshalResponse[handler.CheckResponse](t, rr)
	assert.Equal(t, "Golden Gate Goods", resp.BusinessName)
	assert.NotEmpty(t, resp.ProfileID)

	// A 5-employee California LLC in retail with $30M revenue: FLSA and
	// OSHA (universal, min 1 employee) and CCPA (California, revenue floor
	// $25M) apply; ADA (min 15 employees), FSMA (Food & Beverage), and SOX
	// (Banking & Finance corporations) do not.
	titles := make([]string, 0, len(resp.Regulations))
	for _, reg := range resp.Regulations {
		titles = append(titles, reg.Title)
	}
	assert.ElementsMatch(t, []string{
		"Fair Labor Standards Act (FLSA)",
		"Occupational Safety and Health Act (OSHA)",
		"California Consumer Privacy Act (CCPA)",
	}, titles)
	assert.Equal(t, 3, resp.Matched)
}

func TestHandleCheck_ZeroMatchesIsOK(t *testing.T) {
	// Unseeded store: no candidates at all.
	router, _ := newTestHandler(t, handler.Config{})

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/compliance/check", checkBody()))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := testutil.UnmarshalResponse[handler.CheckResponse](t, rr)
	assert.Zero(t, resp.Matched)
	require.NotNil(t, resp.Regulations)
	assert.Empty(t, resp.Regulations)
}

func TestHandleCheck_Validation(t *testing.T) {
	router, _ := newTestHandler(t, handler.Config{})

	t.Run("malformed JSON", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/v1/compliance/check", "{not json"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		body := checkBody()
		delete(body, "state")
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/compliance/check", body))
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "State")
	})

	t.Run("zero employee count", func(t *testing.T) {
		body := checkBody()
		body["employee_count"] = 0
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/compliance/check", body))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("negative revenue", func(t *testing.T) {
		body := checkBody()
		body["annual_revenue"] = -1
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/compliance/check", body))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleCheck_StoreFailure(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.New(failingService{}, log, metrics.New(prometheus.NewRegistry()), handler.Config{})
	router := chi.NewRouter()
	h.Register(router)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/compliance/check", checkBody()))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "unavailable")
}

func TestHandleOptions(t *testing.T) {
	router, _ := newTestHandler(t, handler.Config{})

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/v1/compliance/options", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := testutil.UnmarshalResponse[handler.OptionsResponse](t, rr)
	assert.Len(t, resp.States, 50)
	assert.Contains(t, resp.Industries, "Food & Beverage")
	assert.Contains(t, resp.BusinessTypes, "LLC")
}

func TestHandleSeed(t *testing.T) {
	router, _ := newTestHandler(t, handler.Config{})

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/admin/seed", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := testutil.UnmarshalResponse[handler.SeedResponse](t, rr)
	assert.Equal(t, 6, resp.Seeded)

	t.Run("seeding twice duplicates the reference set", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/admin/seed", nil))
		require.Equal(t, http.StatusCreated, rr.Code)
		resp := testutil.UnmarshalResponse[handler.SeedResponse](t, rr)
		assert.Equal(t, 6, resp.Seeded)
	})
}

func TestHandleSeed_AdminToken(t *testing.T) {
	router, _ := newTestHandler(t, handler.Config{AdminToken: "sesame"})

	t.Run("missing token is rejected", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/admin/seed", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/admin/seed", nil)
		req.Header.Set("X-Admin-Token", "guess")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("correct token seeds", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/admin/seed", nil)
		req.Header.Set("X-Admin-Token", "sesame")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}

// failingService simulates an unavailable regulation store behind the
// service boundary.
type failingService struct{}

func (failingService) Check(context.Context, models.BusinessProfile) (service.CheckResult, error) {
	return service.CheckResult{}, dErrors.Wrap(dErrors.CodeUnavailable, "query candidate regulations", errors.New("connection refused"))
}

func (failingService) Seed(context.Context) (int, error) {
	return 0, dErrors.Wrap(dErrors.CodeUnavailable, "seed regulations", errors.New("connection refused"))
}
