package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliscan/internal/compliance/models"
)

func baseProfile() models.BusinessProfile {
	return models.BusinessProfile{
		BusinessName:  "Golden Gate Goods",
		State:         "California",
		Industry:      "Retail",
		BusinessType:  "LLC",
		EmployeeCount: 5,
		AnnualRevenue: 30_000_000,
	}
}

func TestMatches_UnrestrictedFieldsNeverReject(t *testing.T) {
	reg := models.Regulation{
		Title:         "Universal Rule",
		States:        models.Unrestricted(),
		Industries:    models.Unrestricted(),
		BusinessTypes: models.Unrestricted(),
	}

	// An unrestricted criterion is insensitive to the profile value,
	// including values outside the intake enumerations.
	for _, state := range []string{"California", "Texas", "Wyoming", "Atlantis"} {
		p := baseProfile()
		p.State = state
		assert.True(t, Matches(p, reg), "state %q should not be rejected", state)
	}
}

func TestMatches_RestrictedState(t *testing.T) {
	reg := models.Regulation{
		States:        models.RestrictedTo("California"),
		Industries:    models.Unrestricted(),
		BusinessTypes: models.Unrestricted(),
	}

	p := baseProfile()
	p.State = "Texas"
	assert.False(t, Matches(p, reg))

	p.State = "California"
	assert.True(t, Matches(p, reg))
}

func TestMatches_EmployeeCountBoundaryInclusive(t *testing.T) {
	reg := models.Regulation{
		States:           models.Unrestricted(),
		Industries:       models.Unrestricted(),
		BusinessTypes:    models.Unrestricted(),
		EmployeeCountMin: models.IntPtr(15),
	}

	cases := []struct {
		employees int
		want      bool
	}{
		{14, false},
		{15, true},
		{16, true},
	}
	for _, tc := range cases {
		p := baseProfile()
		p.EmployeeCount = tc.employees
		assert.Equal(t, tc.want, Matches(p, reg), "employee count %d", tc.employees)
	}
}

func TestMatches_ZeroValuedBoundIsAConstraint(t *testing.T) {
	// A present zero bound must not be confused with an absent bound.
	reg := models.Regulation{
		States:        models.Unrestricted(),
		Industries:    models.Unrestricted(),
		BusinessTypes: models.Unrestricted(),
		RevenueMax:    models.Int64Ptr(0),
	}

	p := baseProfile()
	p.AnnualRevenue = 0
	assert.True(t, Matches(p, reg))

	p.AnnualRevenue = 1
	assert.False(t, Matches(p, reg))
}

func TestMatches_AbsentRevenueBoundsAllowAnyRevenue(t *testing.T) {
	reg := models.Regulation{
		States:        models.Unrestricted(),
		Industries:    models.Unrestricted(),
		BusinessTypes: models.Unrestricted(),
	}

	for _, revenue := range []int64{0, 1, 25_000_000, 1 << 40} {
		p := baseProfile()
		p.AnnualRevenue = revenue
		assert.True(t, Matches(p, reg), "revenue %d", revenue)
	}
}

func TestMatches_AllConditionsConjunctive(t *testing.T) {
	reg := models.Regulation{
		States:           models.RestrictedTo("California"),
		Industries:       models.RestrictedTo("Retail"),
		BusinessTypes:    models.RestrictedTo("LLC"),
		EmployeeCountMin: models.IntPtr(1),
		EmployeeCountMax: models.IntPtr(100),
		RevenueMin:       models.Int64Ptr(1_000),
		RevenueMax:       models.Int64Ptr(50_000_000),
	}

	p := baseProfile()
	require.True(t, Matches(p, reg), "base profile should satisfy every condition")

	t.Run("industry mismatch rejects", func(t *testing.T) {
		p := baseProfile()
		p.Industry = "Healthcare"
		assert.False(t, Matches(p, reg))
	})

	t.Run("employee count above max rejects", func(t *testing.T) {
		p := baseProfile()
		p.EmployeeCount = 101
		assert.False(t, Matches(p, reg))
	})

	t.Run("revenue below min rejects", func(t *testing.T) {
		p := baseProfile()
		p.AnnualRevenue = 999
		assert.False(t, Matches(p, reg))
	})
}

func TestMatches_SampleRegulations(t *testing.T) {
	ccpa := models.Regulation{
		Title:         "California Consumer Privacy Act (CCPA)",
		States:        models.RestrictedTo("California"),
		Industries:    models.Unrestricted(),
		BusinessTypes: models.Unrestricted(),
		RevenueMin:    models.Int64Ptr(25_000_000),
	}
	fsma := models.Regulation{
		Title:         "Food Safety Modernization Act (FSMA)",
		States:        models.Unrestricted(),
		Industries:    models.RestrictedTo("Food & Beverage"),
		BusinessTypes: models.Unrestricted(),
	}

	p := baseProfile()
	assert.True(t, Matches(p, ccpa), "California retailer above the revenue floor")
	assert.False(t, Matches(p, fsma), "industry mismatch")
}

func TestFilter(t *testing.T) {
	ada := models.Regulation{
		Title:            "Americans with Disabilities Act (ADA)",
		States:           models.Unrestricted(),
		Industries:       models.Unrestricted(),
		BusinessTypes:    models.Unrestricted(),
		EmployeeCountMin: models.IntPtr(15),
	}
	flsa := models.Regulation{
		Title:            "Fair Labor Standards Act (FLSA)",
		States:           models.Unrestricted(),
		Industries:       models.Unrestricted(),
		BusinessTypes:    models.Unrestricted(),
		EmployeeCountMin: models.IntPtr(1),
	}
	candidates := []models.Regulation{ada, flsa}

	p := baseProfile() // 5 employees

	t.Run("preserves candidate order", func(t *testing.T) {
		p := baseProfile()
		p.EmployeeCount = 20
		got := Filter(p, candidates)
		require.Len(t, got, 2)
		assert.Equal(t, ada.Title, got[0].Title)
		assert.Equal(t, flsa.Title, got[1].Title)
	})

	t.Run("drops non-matching candidates", func(t *testing.T) {
		got := Filter(p, candidates)
		require.Len(t, got, 1)
		assert.Equal(t, flsa.Title, got[0].Title)
	})

	t.Run("zero matches is an empty slice, not nil", func(t *testing.T) {
		none := models.Regulation{
			States:        models.RestrictedTo("Alaska"),
			Industries:    models.Unrestricted(),
			BusinessTypes: models.Unrestricted(),
		}
		got := Filter(p, []models.Regulation{none})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("deterministic for an unchanged candidate set", func(t *testing.T) {
		first := Filter(p, candidates)
		second := Filter(p, candidates)
		assert.Equal(t, first, second)
	})
}
