package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/repository/memory"
	contractService "github.com/escalator-hq/escalator-backend-go/internal/service/contract"
)

type testEnv struct {
	scheduleRepo *memory.ScheduleRepository
	contractRepo *memory.ContractRepository
	service      schedule.ScheduleService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	scheduleRepo := memory.NewScheduleRepository()
	contractRepo := memory.NewContractRepository()
	employeeRepo := memory.NewEmployeeRepository()
	resolver := contractService.NewResolver(contractRepo)

	_, err := employeeRepo.Create(context.Background(), employee.Employee{
		ID: "emp-1", FullName: "Ana Souza", Registration: "REG-001", Active: true,
	})
	require.NoError(t, err)

	return &testEnv{
		scheduleRepo: scheduleRepo,
		contractRepo: contractRepo,
		service:      NewScheduleService(scheduleRepo, employeeRepo, resolver, memory.NewTransactor()),
	}
}

func (e *testEnv) allow12x36(t *testing.T) {
	t.Helper()
	_, err := e.contractRepo.Create(context.Background(), contract.Contract{
		ID: "c1", EmployeeID: "emp-1", DailyCapMinutes: 720, WeeklyCapMinutes: 2640,
		Allow12x36: true,
		ValidFrom:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a work day", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.service.CreateSchedule(ctx, schedule.CreateScheduleRequest{
			EmployeeID:   "emp-1",
			Date:         "2026-03-02",
			StartTime:    strPtr("08:00"),
			EndTime:      strPtr("17:00"),
			BreakMinutes: 60,
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", resp.Date)
		assert.Equal(t, schedule.ShiftNormal, resp.ShiftType)
		assert.Equal(t, 480, resp.DurationMinutes)
	})

	t.Run("duplicate date is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		req := schedule.CreateScheduleRequest{
			EmployeeID: "emp-1",
			Date:       "2026-03-02",
			StartTime:  strPtr("08:00"),
			EndTime:    strPtr("17:00"),
		}
		_, err := env.service.CreateSchedule(ctx, req)
		require.NoError(t, err)
		_, err = env.service.CreateSchedule(ctx, req)
		assert.ErrorIs(t, err, schedule.ErrScheduleExists)
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.CreateSchedule(ctx, schedule.CreateScheduleRequest{
			EmployeeID: "emp-404",
			Date:       "2026-03-02",
			RestDay:    true,
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestApplyTemplate(t *testing.T) {
	ctx := context.Background()

	listRange := func(t *testing.T, env *testEnv, from, to string) []schedule.ScheduleResponse {
		t.Helper()
		fromDate, _ := time.Parse("2006-01-02", from)
		toDate, _ := time.Parse("2006-01-02", to)
		schedules, err := env.service.ListRange(ctx, "emp-1", fromDate, toDate)
		require.NoError(t, err)
		return schedules
	}

	t.Run("12x36 alternates work and rest", func(t *testing.T) {
		env := newTestEnv(t)
		env.allow12x36(t)

		result, err := env.service.ApplyTemplate(ctx, schedule.ApplyTemplateRequest{
			EmployeeID: "emp-1",
			Template:   Template12x36,
			StartDate:  "2026-03-02",
			EndDate:    "2026-03-05",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, result.SchedulesCreated)

		schedules := listRange(t, env, "2026-03-02", "2026-03-05")
		require.Len(t, schedules, 4)

		assert.False(t, schedules[0].RestDay)
		assert.Equal(t, schedule.Shift12x36, schedules[0].ShiftType)
		assert.Equal(t, "07:00", *schedules[0].StartTime)
		assert.Equal(t, "19:00", *schedules[0].EndTime)
		assert.Equal(t, 660, schedules[0].DurationMinutes)

		assert.True(t, schedules[1].RestDay)
		assert.Equal(t, schedule.Shift12x36, schedules[1].ShiftType)
		assert.False(t, schedules[2].RestDay)
		assert.True(t, schedules[3].RestDay)
		assert.Equal(t, schedule.Shift12x36, schedules[3].ShiftType)
	})

	t.Run("12x36 requires contract authorization", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.ApplyTemplate(ctx, schedule.ApplyTemplateRequest{
			EmployeeID: "emp-1",
			Template:   Template12x36,
			StartDate:  "2026-03-02",
			EndDate:    "2026-03-05",
		})
		assert.ErrorIs(t, err, schedule.ErrTemplateNotAuthorized)
	})

	t.Run("6x1 rests every seventh day regardless of weekday", func(t *testing.T) {
		env := newTestEnv(t)

		// Wednesday anchor: the rest day lands on Tuesday, not the weekend.
		result, err := env.service.ApplyTemplate(ctx, schedule.ApplyTemplateRequest{
			EmployeeID: "emp-1",
			Template:   Template6x1,
			StartDate:  "2026-03-04",
			EndDate:    "2026-03-17",
		})
		require.NoError(t, err)
		assert.Equal(t, 14, result.SchedulesCreated)

		schedules := listRange(t, env, "2026-03-04", "2026-03-17")
		require.Len(t, schedules, 14)
		for i, sched := range schedules {
			if i == 6 || i == 13 {
				assert.True(t, sched.RestDay, "day %d should be rest", i)
			} else {
				assert.False(t, sched.RestDay, "day %d should be work", i)
				assert.Equal(t, 480, sched.DurationMinutes)
			}
		}
	})

	t.Run("5x2 rests on weekends", func(t *testing.T) {
		env := newTestEnv(t)

		// Monday through Sunday
		result, err := env.service.ApplyTemplate(ctx, schedule.ApplyTemplateRequest{
			EmployeeID: "emp-1",
			Template:   Template5x2,
			StartDate:  "2026-03-02",
			EndDate:    "2026-03-08",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, result.SchedulesCreated)

		schedules := listRange(t, env, "2026-03-02", "2026-03-08")
		require.Len(t, schedules, 7)
		for i, sched := range schedules {
			if i < 5 {
				assert.False(t, sched.RestDay, "weekday %d should be work", i)
			} else {
				assert.True(t, sched.RestDay, "day %d should be rest", i)
			}
		}
	})

	t.Run("existing days are left untouched", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.CreateSchedule(ctx, schedule.CreateScheduleRequest{
			EmployeeID: "emp-1",
			Date:       "2026-03-03",
			RestDay:    true,
		})
		require.NoError(t, err)

		result, err := env.service.ApplyTemplate(ctx, schedule.ApplyTemplateRequest{
			EmployeeID: "emp-1",
			Template:   Template5x2,
			StartDate:  "2026-03-02",
			EndDate:    "2026-03-08",
		})
		require.NoError(t, err)
		assert.Equal(t, 6, result.SchedulesCreated)

		sched, err := env.service.GetDay(ctx, "emp-1", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, sched.RestDay)
	})

	t.Run("unknown template is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.service.ApplyTemplate(ctx, schedule.ApplyTemplateRequest{
			EmployeeID: "emp-1",
			Template:   "4x3",
			StartDate:  "2026-03-02",
			EndDate:    "2026-03-08",
		})
		assert.ErrorIs(t, err, schedule.ErrUnknownTemplate)
	})
}

func TestListTemplates(t *testing.T) {
	env := newTestEnv(t)

	templates := env.service.ListTemplates()
	require.Len(t, templates, 3)
	assert.Equal(t, Template12x36, templates[0].Name)
	assert.Equal(t, Template5x2, templates[1].Name)
	assert.Equal(t, Template6x1, templates[2].Name)
	for _, tpl := range templates {
		assert.True(t, tpl.Legal, "%s should be legal", tpl.Name)
	}
}

func TestCatalogLegal(t *testing.T) {
	def := func(workHours, restHours int) templateDef {
		return templateDef{info: schedule.TemplateInfo{
			Legal: true, WorkHours: workHours, RestHours: restHours,
		}}
	}

	assert.True(t, catalogLegal(def(12, 36)))
	assert.True(t, catalogLegal(def(8, 16)))
	assert.False(t, catalogLegal(def(13, 11)), "work above the daily ceiling")
	assert.False(t, catalogLegal(def(10, 8)), "rest below eleven hours")
}
