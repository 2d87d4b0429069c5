package workrule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	"github.com/escalator-hq/escalator-backend-go/internal/repository/memory"
	contractService "github.com/escalator-hq/escalator-backend-go/internal/service/contract"
)

type fixture struct {
	scheduleRepo *memory.ScheduleRepository
	contractRepo *memory.ContractRepository
	validator    *Validator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	scheduleRepo := memory.NewScheduleRepository()
	contractRepo := memory.NewContractRepository()
	settings := setting.NewSettings(memory.NewSettingRepository())
	resolver := contractService.NewResolver(contractRepo)

	return &fixture{
		scheduleRepo: scheduleRepo,
		contractRepo: contractRepo,
		validator:    NewValidator(scheduleRepo, resolver, settings),
	}
}

func (f *fixture) addContract(t *testing.T, ctr contract.Contract) {
	t.Helper()
	if ctr.ValidFrom.IsZero() {
		ctr.ValidFrom = date(2026, 1, 1)
	}
	_, err := f.contractRepo.Create(context.Background(), ctr)
	require.NoError(t, err)
}

func (f *fixture) addWorkDay(t *testing.T, employeeID string, day time.Time, startHour, endHour, breakMinutes int, shiftType string) {
	t.Helper()
	start := schedule.ClockTime(startHour, 0)
	end := schedule.ClockTime(endHour, 0)
	_, err := f.scheduleRepo.Create(context.Background(), schedule.Schedule{
		ID:           employeeID + day.Format("2006-01-02"),
		EmployeeID:   employeeID,
		Date:         day,
		StartTime:    &start,
		EndTime:      &end,
		BreakMinutes: breakMinutes,
		ShiftType:    shiftType,
	})
	require.NoError(t, err)
}

func (f *fixture) addRestDay(t *testing.T, employeeID string, day time.Time) {
	t.Helper()
	_, err := f.scheduleRepo.Create(context.Background(), schedule.Schedule{
		ID:         employeeID + day.Format("2006-01-02"),
		EmployeeID: employeeID,
		Date:       day,
		RestDay:    true,
		ShiftType:  schedule.ShiftNormal,
	})
	require.NoError(t, err)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateDailyJourney(t *testing.T) {
	ctx := context.Background()
	monday := date(2026, 3, 2)

	t.Run("within the cap", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, WeeklyCapMinutes: 2400})
		f.addWorkDay(t, "emp-1", monday, 8, 17, 60, schedule.ShiftNormal)

		verdict, err := f.validator.ValidateDailyJourney(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
		assert.Equal(t, 480, verdict.JourneyMinutes)
	})

	t.Run("over the cap", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, WeeklyCapMinutes: 2400})
		f.addWorkDay(t, "emp-1", monday, 8, 18, 60, schedule.ShiftNormal)

		verdict, err := f.validator.ValidateDailyJourney(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictDailyLimit, verdict.Code)
		assert.Equal(t, 540, verdict.JourneyMinutes)
	})

	t.Run("no contract in force", func(t *testing.T) {
		f := newFixture(t)
		f.addWorkDay(t, "emp-1", monday, 8, 17, 60, schedule.ShiftNormal)

		verdict, err := f.validator.ValidateDailyJourney(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictNoContract, verdict.Code)
	})

	t.Run("rest day passes with zero minutes", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, WeeklyCapMinutes: 2400})
		f.addRestDay(t, "emp-1", monday)

		verdict, err := f.validator.ValidateDailyJourney(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
		assert.Equal(t, 0, verdict.JourneyMinutes)
	})
}

func TestValidateWeeklyJourney(t *testing.T) {
	ctx := context.Background()
	monday := date(2026, 3, 2)

	t.Run("sums work days only", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, WeeklyCapMinutes: 2400})
		for i := 0; i < 5; i++ {
			f.addWorkDay(t, "emp-1", monday.AddDate(0, 0, i), 8, 17, 60, schedule.ShiftNormal)
		}
		f.addRestDay(t, "emp-1", monday.AddDate(0, 0, 5))
		f.addRestDay(t, "emp-1", monday.AddDate(0, 0, 6))

		verdict, err := f.validator.ValidateWeeklyJourney(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
		assert.Equal(t, 2400, verdict.WeeklyMinutes)
	})

	t.Run("over the weekly cap", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 600, WeeklyCapMinutes: 2400})
		for i := 0; i < 5; i++ {
			f.addWorkDay(t, "emp-1", monday.AddDate(0, 0, i), 8, 18, 60, schedule.ShiftNormal)
		}

		verdict, err := f.validator.ValidateWeeklyJourney(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictWeeklyLimit, verdict.Code)
		assert.Equal(t, 2700, verdict.WeeklyMinutes)
	})
}

func TestRequiredBreakMinutes(t *testing.T) {
	assert.Equal(t, 60, RequiredBreakMinutes(480))
	assert.Equal(t, 60, RequiredBreakMinutes(360))
	assert.Equal(t, 15, RequiredBreakMinutes(359))
	assert.Equal(t, 15, RequiredBreakMinutes(300))
	assert.Equal(t, 15, RequiredBreakMinutes(240))
	assert.Equal(t, 0, RequiredBreakMinutes(200))
	assert.Equal(t, 0, RequiredBreakMinutes(0))
}

func TestValidateBreak(t *testing.T) {
	f := newFixture(t)
	start := schedule.ClockTime(8, 0)
	end := schedule.ClockTime(17, 0)

	t.Run("sufficient break", func(t *testing.T) {
		verdict := f.validator.ValidateBreak(schedule.Schedule{
			StartTime: &start, EndTime: &end, BreakMinutes: 60,
		})
		assert.True(t, verdict.Valid)
		assert.Equal(t, 60, verdict.RequiredBreakMinutes)
	})

	t.Run("insufficient break", func(t *testing.T) {
		verdict := f.validator.ValidateBreak(schedule.Schedule{
			StartTime: &start, EndTime: &end, BreakMinutes: 30,
		})
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictInsufficientBreak, verdict.Code)
	})

	t.Run("rest day always passes", func(t *testing.T) {
		verdict := f.validator.ValidateBreak(schedule.Schedule{RestDay: true})
		assert.True(t, verdict.Valid)
	})
}

func TestValidateRestGap(t *testing.T) {
	ctx := context.Background()
	monday := date(2026, 3, 2)
	tuesday := monday.AddDate(0, 0, 1)

	t.Run("twelve hour gap is enough", func(t *testing.T) {
		f := newFixture(t)
		f.addWorkDay(t, "emp-1", monday, 8, 19, 60, schedule.ShiftNormal)
		f.addWorkDay(t, "emp-1", tuesday, 7, 16, 60, schedule.ShiftNormal)

		verdict, err := f.validator.ValidateRestGap(ctx, "emp-1", tuesday)
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
		assert.Equal(t, 720, verdict.RestGapMinutes)
	})

	t.Run("short gap fails", func(t *testing.T) {
		f := newFixture(t)
		f.addWorkDay(t, "emp-1", monday, 13, 22, 60, schedule.ShiftNormal)
		f.addWorkDay(t, "emp-1", tuesday, 7, 16, 60, schedule.ShiftNormal)

		verdict, err := f.validator.ValidateRestGap(ctx, "emp-1", tuesday)
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictRestGapTooShort, verdict.Code)
		assert.Equal(t, 540, verdict.RestGapMinutes)
	})

	t.Run("no previous schedule passes", func(t *testing.T) {
		f := newFixture(t)
		f.addWorkDay(t, "emp-1", tuesday, 7, 16, 60, schedule.ShiftNormal)

		verdict, err := f.validator.ValidateRestGap(ctx, "emp-1", tuesday)
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
	})
}

func TestValidateWeeklyRest(t *testing.T) {
	ctx := context.Background()
	monday := date(2026, 3, 2)

	t.Run("week with a rest day", func(t *testing.T) {
		f := newFixture(t)
		for i := 0; i < 6; i++ {
			f.addWorkDay(t, "emp-1", monday.AddDate(0, 0, i), 8, 17, 60, schedule.ShiftNormal)
		}
		f.addRestDay(t, "emp-1", monday.AddDate(0, 0, 6))

		verdict, err := f.validator.ValidateWeeklyRest(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
		assert.Equal(t, 1, verdict.RestDays)
	})

	t.Run("week without rest fails", func(t *testing.T) {
		f := newFixture(t)
		for i := 0; i < 7; i++ {
			f.addWorkDay(t, "emp-1", monday.AddDate(0, 0, i), 8, 17, 60, schedule.ShiftNormal)
		}

		verdict, err := f.validator.ValidateWeeklyRest(ctx, "emp-1", monday)
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictNoWeeklyRest, verdict.Code)
	})
}

func TestValidate12x36(t *testing.T) {
	ctx := context.Background()
	monday := date(2026, 3, 2)
	tuesday := monday.AddDate(0, 0, 1)

	shift := func(f *fixture) schedule.Schedule {
		sched, err := f.scheduleRepo.GetByEmployeeAndDate(ctx, "emp-1", monday)
		require.NoError(t, err)
		require.NotNil(t, sched)
		return *sched
	}

	t.Run("authorized shift with paired rest", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 720, WeeklyCapMinutes: 2640, Allow12x36: true})
		f.addWorkDay(t, "emp-1", monday, 7, 19, 60, schedule.Shift12x36)
		f.addRestDay(t, "emp-1", tuesday)

		verdict, err := f.validator.Validate12x36(ctx, shift(f))
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
	})

	t.Run("contract without authorization fails", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 720, WeeklyCapMinutes: 2640})
		f.addWorkDay(t, "emp-1", monday, 7, 19, 60, schedule.Shift12x36)
		f.addRestDay(t, "emp-1", tuesday)

		verdict, err := f.validator.Validate12x36(ctx, shift(f))
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictNotAuthorized, verdict.Code)
	})

	t.Run("missing next day rest fails", func(t *testing.T) {
		f := newFixture(t)
		f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 720, WeeklyCapMinutes: 2640, Allow12x36: true})
		f.addWorkDay(t, "emp-1", monday, 7, 19, 60, schedule.Shift12x36)
		f.addWorkDay(t, "emp-1", tuesday, 7, 19, 60, schedule.Shift12x36)

		verdict, err := f.validator.Validate12x36(ctx, shift(f))
		require.NoError(t, err)
		assert.False(t, verdict.Valid)
		assert.Equal(t, schedule.VerdictMissingPairedRest, verdict.Code)
	})

	t.Run("other shift types pass untouched", func(t *testing.T) {
		f := newFixture(t)
		f.addWorkDay(t, "emp-1", monday, 8, 17, 60, schedule.ShiftNormal)

		verdict, err := f.validator.Validate12x36(ctx, shift(f))
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
	})

	t.Run("embedded rest day passes without authorization", func(t *testing.T) {
		f := newFixture(t)

		verdict, err := f.validator.Validate12x36(ctx, schedule.Schedule{
			EmployeeID: "emp-1",
			Date:       monday,
			RestDay:    true,
			ShiftType:  schedule.Shift12x36,
		})
		require.NoError(t, err)
		assert.True(t, verdict.Valid)
	})
}

func TestValidateWeek(t *testing.T) {
	ctx := context.Background()
	monday := date(2026, 3, 2)

	f := newFixture(t)
	f.addContract(t, contract.Contract{ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 480, WeeklyCapMinutes: 2400})
	for i := 0; i < 5; i++ {
		f.addWorkDay(t, "emp-1", monday.AddDate(0, 0, i), 8, 17, 60, schedule.ShiftNormal)
	}
	f.addRestDay(t, "emp-1", monday.AddDate(0, 0, 5))
	f.addRestDay(t, "emp-1", monday.AddDate(0, 0, 6))

	result, err := f.validator.ValidateWeek(ctx, "emp-1", monday)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Len(t, result.Days, 7)
	assert.True(t, result.WeeklyJourney.Valid)
	assert.True(t, result.WeeklyRest.Valid)
	assert.Equal(t, 2400, result.WeeklyJourney.WeeklyMinutes)
}
