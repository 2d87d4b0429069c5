package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
)

type scheduleService struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
	resolver     contract.ContractResolver
	tx           database.Transactor
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	resolver contract.ContractResolver,
	tx database.Transactor,
) schedule.ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
		tx:           tx,
	}
}

// CreateSchedule registers one planned day. One schedule per employee and
// date; a second write for the same pair fails with ErrScheduleExists.
func (s *scheduleService) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing, err := s.scheduleRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	if existing != nil {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleExists
	}

	sched := schedule.Schedule{
		ID:           uuid.New().String(),
		EmployeeID:   req.EmployeeID,
		Date:         date,
		RestDay:      req.RestDay,
		BreakMinutes: req.BreakMinutes,
		ShiftType:    req.ShiftType,
	}
	if sched.ShiftType == "" {
		sched.ShiftType = schedule.ShiftNormal
	}
	if !req.RestDay {
		start, _ := time.Parse("15:04", *req.StartTime)
		end, _ := time.Parse("15:04", *req.EndTime)
		sched.StartTime = &start
		sched.EndTime = &end
	}

	stored, err := s.scheduleRepo.Create(ctx, sched)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return toResponse(stored), nil
}

// GetDay returns the schedule for an employee on a date.
func (s *scheduleService) GetDay(ctx context.Context, employeeID string, date time.Time) (schedule.ScheduleResponse, error) {
	sched, err := s.scheduleRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	if sched == nil {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
	}

	return toResponse(*sched), nil
}

// ListRange returns the schedules of an employee inside [from, to].
func (s *scheduleService) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.ScheduleResponse, error) {
	if to.Before(from) {
		return nil, schedule.ErrInvalidPeriod
	}

	schedules, err := s.scheduleRepo.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, toResponse(sched))
	}

	return responses, nil
}

// ApplyTemplate expands a predefined pattern over [start_date, end_date].
// Dates that already carry a schedule are left untouched; only the gaps are
// filled. The whole expansion is one transaction.
func (s *scheduleService) ApplyTemplate(ctx context.Context, req schedule.ApplyTemplateRequest) (schedule.TemplateResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.TemplateResult{}, err
	}

	def, ok := templates[req.Template]
	if !ok {
		return schedule.TemplateResult{}, schedule.ErrUnknownTemplate
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.TemplateResult{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	if def.requiresAuth {
		ctr, err := s.resolver.Resolve(ctx, req.EmployeeID, start)
		if err != nil {
			return schedule.TemplateResult{}, err
		}
		if ctr == nil || !ctr.Allow12x36 {
			return schedule.TemplateResult{}, schedule.ErrTemplateNotAuthorized
		}
	}

	created := 0

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			existing, err := s.scheduleRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
			if err != nil {
				return fmt.Errorf("failed to get schedule: %w", err)
			}
			if existing != nil {
				continue
			}

			sched := def.dayFor(start, date).toSchedule(req.EmployeeID, date)
			sched.ID = uuid.New().String()

			if _, err := s.scheduleRepo.Create(ctx, sched); err != nil {
				return fmt.Errorf("failed to create schedule: %w", err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return schedule.TemplateResult{}, err
	}

	slog.Info("shift template applied",
		"employee_id", req.EmployeeID,
		"template", req.Template,
		"created", created,
	)

	return schedule.TemplateResult{
		Template:         req.Template,
		SchedulesCreated: created,
		Period:           req.StartDate + " to " + req.EndDate,
	}, nil
}

// ListTemplates returns the pattern catalog, ordered by name.
func (s *scheduleService) ListTemplates() []schedule.TemplateInfo {
	infos := make([]schedule.TemplateInfo, 0, len(templates))
	for _, def := range templates {
		info := def.info
		info.Legal = catalogLegal(def)
		infos = append(infos, info)
	}

	sort.Slice(infos, func(a, b int) bool {
		return infos[a].Name < infos[b].Name
	})

	return infos
}

func toResponse(s schedule.Schedule) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		Date:            s.Date.Format("2006-01-02"),
		RestDay:         s.RestDay,
		BreakMinutes:    s.BreakMinutes,
		ShiftType:       s.ShiftType,
		DurationMinutes: s.DurationMinutes(),
	}
	if s.StartTime != nil {
		v := s.StartTime.Format("15:04")
		resp.StartTime = &v
	}
	if s.EndTime != nil {
		v := s.EndTime.Format("15:04")
		resp.EndTime = &v
	}
	return resp
}
