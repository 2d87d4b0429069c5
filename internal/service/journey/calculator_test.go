package journey

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	"github.com/escalator-hq/escalator-backend-go/internal/repository/memory"
	contractService "github.com/escalator-hq/escalator-backend-go/internal/service/contract"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newCalculator(t *testing.T, contracts ...contract.Contract) *Calculator {
	t.Helper()

	contractRepo := memory.NewContractRepository()
	for _, ctr := range contracts {
		if ctr.ValidFrom.IsZero() {
			ctr.ValidFrom = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		}
		_, err := contractRepo.Create(context.Background(), ctr)
		require.NoError(t, err)
	}

	resolver := contractService.NewResolver(contractRepo)
	settings := setting.NewSettings(memory.NewSettingRepository())

	return NewCalculator(resolver, settings)
}

func at(dayOffset, hour, minute int) time.Time {
	return day.AddDate(0, 0, dayOffset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func punchAt(punchType string, ts time.Time) punch.Punch {
	return punch.Punch{EmployeeID: "emp-1", Type: punchType, Timestamp: ts}
}

func TestComputeDailyJourney(t *testing.T) {
	ctx := context.Background()

	t.Run("regular day with a break", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 8, 0)),
			punchAt(punch.TypeBreakStart, at(0, 12, 0)),
			punchAt(punch.TypeBreakEnd, at(0, 13, 0)),
			punchAt(punch.TypeExit, at(0, 17, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 480, journey.TotalWorkedMinutes)
		assert.Equal(t, 480, journey.NormalMinutes)
		assert.Equal(t, 0, journey.OvertimeMinutes)
		assert.Equal(t, 60, journey.BreakMinutes)
		assert.Equal(t, 0, journey.NightMinutes)
	})

	t.Run("overtime above the daily cap", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 8, 0)),
			punchAt(punch.TypeExit, at(0, 18, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 600, journey.TotalWorkedMinutes)
		assert.Equal(t, 480, journey.NormalMinutes)
		assert.Equal(t, 120, journey.OvertimeMinutes)
	})

	t.Run("night shift converts to legal hours", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 22, 0)),
			punchAt(punch.TypeExit, at(1, 6, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 480, journey.TotalWorkedMinutes)
		assert.Equal(t, 420, journey.NightClockMinutes)
		assert.Equal(t, 480, journey.NightMinutes)
	})

	t.Run("break reduces worked time but not night minutes", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 22, 0)),
			punchAt(punch.TypeBreakStart, at(1, 1, 0)),
			punchAt(punch.TypeBreakEnd, at(1, 2, 0)),
			punchAt(punch.TypeExit, at(1, 6, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 420, journey.TotalWorkedMinutes)
		assert.Equal(t, 60, journey.BreakMinutes)
		assert.Equal(t, 420, journey.NightClockMinutes)
		assert.Equal(t, 480, journey.NightMinutes)
	})

	t.Run("legal night conversion truncates", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		// 46 clock minutes = 52.57 legal minutes; the fraction is dropped.
		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 22, 0)),
			punchAt(punch.TypeExit, at(0, 22, 46)),
		})
		require.NoError(t, err)
		assert.Equal(t, 46, journey.NightClockMinutes)
		assert.Equal(t, 52, journey.NightMinutes)
	})

	t.Run("duplicate entries pair positionally", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		// The first entry pairs with the first exit; the second entry is
		// left open and dropped.
		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 8, 0)),
			punchAt(punch.TypeEntry, at(0, 9, 0)),
			punchAt(punch.TypeExit, at(0, 17, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 540, journey.TotalWorkedMinutes)
	})

	t.Run("open day without exit counts nothing", func(t *testing.T) {
		calc := newCalculator(t)

		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 8, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, journey.TotalWorkedMinutes)
	})

	t.Run("defaults apply without a contract", func(t *testing.T) {
		calc := newCalculator(t)

		journey, err := calc.ComputeDailyJourney(ctx, "emp-1", day, []punch.Punch{
			punchAt(punch.TypeEntry, at(0, 8, 0)),
			punchAt(punch.TypeExit, at(0, 18, 0)),
		})
		require.NoError(t, err)
		assert.Equal(t, 480, journey.NormalMinutes)
		assert.Equal(t, 120, journey.OvertimeMinutes)
	})
}

func TestComputeLedgerDelta(t *testing.T) {
	ctx := context.Background()

	t.Run("surplus credits up to the overtime cap", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		delta, err := calc.ComputeLedgerDelta(ctx, "emp-1", day,
			punch.DayJourney{TotalWorkedMinutes: 540})
		require.NoError(t, err)
		assert.Equal(t, 60, delta.CreditMinutes)
		assert.Equal(t, 0, delta.DebitMinutes)
	})

	t.Run("surplus above the cap is truncated", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		delta, err := calc.ComputeLedgerDelta(ctx, "emp-1", day,
			punch.DayJourney{TotalWorkedMinutes: 660})
		require.NoError(t, err)
		assert.Equal(t, 120, delta.CreditMinutes)
	})

	t.Run("deficit debits in full", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		delta, err := calc.ComputeLedgerDelta(ctx, "emp-1", day,
			punch.DayJourney{TotalWorkedMinutes: 420})
		require.NoError(t, err)
		assert.Equal(t, 0, delta.CreditMinutes)
		assert.Equal(t, 60, delta.DebitMinutes)
	})

	t.Run("exact match moves nothing", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		delta, err := calc.ComputeLedgerDelta(ctx, "emp-1", day,
			punch.DayJourney{TotalWorkedMinutes: 480})
		require.NoError(t, err)
		assert.Equal(t, 0, delta.CreditMinutes)
		assert.Equal(t, 0, delta.DebitMinutes)
	})

	t.Run("short day debits against the daily cap", func(t *testing.T) {
		calc := newCalculator(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, OvertimeCapMinutes: 120})

		delta, err := calc.ComputeLedgerDelta(ctx, "emp-1", day,
			punch.DayJourney{TotalWorkedMinutes: 90})
		require.NoError(t, err)
		assert.Equal(t, 0, delta.CreditMinutes)
		assert.Equal(t, 390, delta.DebitMinutes)
	})

	t.Run("default cap applies without a contract", func(t *testing.T) {
		calc := newCalculator(t)

		delta, err := calc.ComputeLedgerDelta(ctx, "emp-1", day,
			punch.DayJourney{TotalWorkedMinutes: 600})
		require.NoError(t, err)
		assert.Equal(t, 120, delta.CreditMinutes)
		assert.Equal(t, 0, delta.DebitMinutes)
	})
}
