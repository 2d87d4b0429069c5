package punch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/clock"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
	"github.com/escalator-hq/escalator-backend-go/internal/service/journey"
)

// driftToleranceMinutes is how far a punch may deviate from the scheduled
// clock time before it raises an alert.
const driftToleranceMinutes = 15

type punchService struct {
	punchRepo    punch.PunchRepository
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
	timebank     timebank.TimebankService
	calculator   *journey.Calculator
	tx           database.Transactor
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	timebankService timebank.TimebankService,
	calculator *journey.Calculator,
	tx database.Transactor,
) punch.PunchService {
	return &punchService{
		punchRepo:    punchRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		timebank:     timebankService,
		calculator:   calculator,
		tx:           tx,
	}
}

// Register stores one punch. The per-day type sequence is enforced and a
// violation rejects the punch; everything else about an unusual punch becomes
// an advisory alert that clears the validated flag. An exit punch closes the
// day and recomputes its time-bank entry in the same transaction.
func (s *punchService) Register(ctx context.Context, req punch.RegisterPunchRequest) (punch.RegisterPunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.RegisterPunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return punch.RegisterPunchResponse{}, err
	}
	if !emp.Active {
		return punch.RegisterPunchResponse{}, employee.ErrEmployeeInactive
	}

	date := clock.DateOf(req.ParsedTimestamp)

	var response punch.RegisterPunchResponse

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		last, err := s.punchRepo.GetLastForDay(ctx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to get last punch: %w", err)
		}

		// Any type may open a day; a shift crossing midnight exits on the
		// next calendar date with no prior punch there.
		if last != nil && !punch.CanFollow(last.Type, req.Type) {
			return punch.ErrInvalidSequence
		}

		sched, err := s.scheduleRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to get schedule: %w", err)
		}

		alerts := collectAlerts(req, sched)

		p := punch.Punch{
			ID:         uuid.New().String(),
			EmployeeID: req.EmployeeID,
			Timestamp:  req.ParsedTimestamp,
			Type:       req.Type,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			Validated:  len(alerts) == 0,
			Note:       req.Note,
		}
		if sched != nil {
			p.ScheduleID = &sched.ID
		}

		stored, err := s.punchRepo.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}

		if req.Type == punch.TypeExit {
			if _, err := s.timebank.UpsertDaily(ctx, req.EmployeeID, date); err != nil {
				return err
			}
		}

		response = punch.RegisterPunchResponse{
			PunchID:   stored.ID,
			Validated: stored.Validated,
			Alerts:    alerts,
		}

		return nil
	})
	if err != nil {
		return punch.RegisterPunchResponse{}, err
	}

	if len(response.Alerts) > 0 {
		slog.Warn("punch registered with alerts",
			"employee_id", req.EmployeeID,
			"type", req.Type,
			"alerts", response.Alerts,
		)
	}

	return response, nil
}

// collectAlerts compares the punch against the day's schedule. Alerts are
// advisory; none of them block registration.
func collectAlerts(req punch.RegisterPunchRequest, sched *schedule.Schedule) []string {
	alerts := []string{}

	if sched == nil {
		return append(alerts, "no schedule planned for this date")
	}
	if sched.RestDay {
		return append(alerts, "punch registered on a planned rest day")
	}

	minute := schedule.MinuteOfDay(req.ParsedTimestamp)

	switch req.Type {
	case punch.TypeEntry:
		if sched.StartTime != nil {
			drift := minute - schedule.MinuteOfDay(*sched.StartTime)
			if drift < -driftToleranceMinutes || drift > driftToleranceMinutes {
				alerts = append(alerts, fmt.Sprintf("entry deviates %dmin from the scheduled start", drift))
			}
		}
	case punch.TypeExit:
		if sched.EndTime != nil {
			drift := minute - schedule.MinuteOfDay(*sched.EndTime)
			if drift < -driftToleranceMinutes || drift > driftToleranceMinutes {
				alerts = append(alerts, fmt.Sprintf("exit deviates %dmin from the scheduled end", drift))
			}
		}
	}

	return alerts
}

// DayOverview returns the punches of a day and the journey computed from
// them.
func (s *punchService) DayOverview(ctx context.Context, employeeID string, date time.Time) (punch.DayOverviewResponse, error) {
	date = clock.DateOf(date)

	punches, err := s.punchRepo.ListByEmployeeAndDay(ctx, employeeID, date)
	if err != nil {
		return punch.DayOverviewResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	dayJourney, err := s.calculator.ComputeDailyJourney(ctx, employeeID, date, punches)
	if err != nil {
		return punch.DayOverviewResponse{}, err
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.PunchResponse{
			ID:         p.ID,
			EmployeeID: p.EmployeeID,
			Type:       p.Type,
			Timestamp:  p.Timestamp.Format(time.RFC3339),
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Validated:  p.Validated,
			Note:       p.Note,
		})
	}

	return punch.DayOverviewResponse{
		Date:         date.Format("2006-01-02"),
		Punches:      responses,
		TotalPunches: len(responses),
		Journey:      dayJourney,
	}, nil
}
