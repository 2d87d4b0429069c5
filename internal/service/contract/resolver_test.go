package contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/repository/memory"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewContractRepository()
	resolver := NewResolver(repo)

	until := date(2025, 12, 31)
	_, err := repo.Create(ctx, contract.Contract{
		ID:              "old",
		EmployeeID:      "emp-1",
		DailyCapMinutes: 480,
		ValidFrom:       date(2024, 1, 1),
		ValidUntil:      &until,
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, contract.Contract{
		ID:              "current",
		EmployeeID:      "emp-1",
		DailyCapMinutes: 360,
		ValidFrom:       date(2026, 1, 1),
	})
	require.NoError(t, err)

	t.Run("resolves the contract covering the date", func(t *testing.T) {
		ctr, err := resolver.Resolve(ctx, "emp-1", date(2025, 6, 1))
		require.NoError(t, err)
		require.NotNil(t, ctr)
		assert.Equal(t, "old", ctr.ID)
	})

	t.Run("open ended contract covers any later date", func(t *testing.T) {
		ctr, err := resolver.Resolve(ctx, "emp-1", date(2026, 8, 30))
		require.NoError(t, err)
		require.NotNil(t, ctr)
		assert.Equal(t, "current", ctr.ID)
	})

	t.Run("gap between contracts resolves to nil", func(t *testing.T) {
		ctr, err := resolver.Resolve(ctx, "emp-1", date(2023, 6, 1))
		require.NoError(t, err)
		assert.Nil(t, ctr)
	})

	t.Run("unknown employee resolves to nil", func(t *testing.T) {
		ctr, err := resolver.Resolve(ctx, "emp-404", date(2026, 1, 1))
		require.NoError(t, err)
		assert.Nil(t, ctr)
	})

	t.Run("latest start wins when windows overlap", func(t *testing.T) {
		_, err := repo.Create(ctx, contract.Contract{
			ID:              "amendment",
			EmployeeID:      "emp-1",
			DailyCapMinutes: 420,
			ValidFrom:       date(2026, 6, 1),
		})
		require.NoError(t, err)

		ctr, err := resolver.Resolve(ctx, "emp-1", date(2026, 7, 1))
		require.NoError(t, err)
		require.NotNil(t, ctr)
		assert.Equal(t, "amendment", ctr.ID)
	})
}
