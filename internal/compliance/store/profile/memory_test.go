package profile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliscan/internal/compliance/models"
)

func TestInMemory_Insert(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewInMemory(WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	p := models.BusinessProfile{
		BusinessName:  "Golden Gate Goods",
		State:         "California",
		Industry:      "Retail",
		BusinessType:  "LLC",
		EmployeeCount: 5,
		AnnualRevenue: 30_000_000,
	}

	first, err := store.Insert(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, fixed, first.CreatedAt)
	assert.Equal(t, p, first.BusinessProfile)

	// Submissions are append-only history: the same profile submitted again
	// becomes a second record.
	second, err := store.Insert(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestInMemory_Concurrent(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Insert(ctx, models.BusinessProfile{BusinessName: "Concurrent"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.All(), goroutines)
}
