package workrule

import (
	"context"
	"fmt"
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
)

// Validator checks planned schedules against the CLT limits of the
// employee's contract and the system settings. All checks are reads; a
// violated rule comes back as a failing Verdict, never as an error.
type Validator struct {
	scheduleRepo schedule.ScheduleRepository
	resolver     contract.ContractResolver
	settings     *setting.Settings
}

func NewValidator(
	scheduleRepo schedule.ScheduleRepository,
	resolver contract.ContractResolver,
	settings *setting.Settings,
) *Validator {
	return &Validator{
		scheduleRepo: scheduleRepo,
		resolver:     resolver,
		settings:     settings,
	}
}

// ValidateDailyJourney checks the planned duration of one day against the
// contract's daily cap. Rest days and unscheduled days pass with zero
// minutes.
func (v *Validator) ValidateDailyJourney(ctx context.Context, employeeID string, date time.Time) (schedule.Verdict, error) {
	c, err := v.resolver.Resolve(ctx, employeeID, date)
	if err != nil {
		return schedule.Verdict{}, err
	}
	if c == nil {
		return schedule.Fail(schedule.VerdictNoContract, "no contract in force on "+date.Format("2006-01-02")), nil
	}

	sched, err := v.scheduleRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return schedule.Verdict{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	if sched == nil || sched.RestDay {
		verdict := schedule.Ok()
		verdict.JourneyMinutes = 0
		return verdict, nil
	}

	minutes := sched.DurationMinutes()
	if minutes > c.DailyCapMinutes {
		verdict := schedule.Fail(
			schedule.VerdictDailyLimit,
			fmt.Sprintf("journey of %dmin exceeds the daily cap of %dmin", minutes, c.DailyCapMinutes),
		)
		verdict.JourneyMinutes = minutes
		return verdict, nil
	}

	verdict := schedule.Ok()
	verdict.JourneyMinutes = minutes
	return verdict, nil
}

// ValidateWeeklyJourney sums the planned durations over the 7-day window
// starting at weekStart and checks the contract's weekly cap.
func (v *Validator) ValidateWeeklyJourney(ctx context.Context, employeeID string, weekStart time.Time) (schedule.Verdict, error) {
	c, err := v.resolver.Resolve(ctx, employeeID, weekStart)
	if err != nil {
		return schedule.Verdict{}, err
	}
	if c == nil {
		return schedule.Fail(schedule.VerdictNoContract, "no contract in force on "+weekStart.Format("2006-01-02")), nil
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	schedules, err := v.scheduleRepo.ListByEmployeeAndRange(ctx, employeeID, weekStart, weekEnd)
	if err != nil {
		return schedule.Verdict{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	total := 0
	for _, s := range schedules {
		if s.RestDay {
			continue
		}
		total += s.DurationMinutes()
	}

	if total > c.WeeklyCapMinutes {
		verdict := schedule.Fail(
			schedule.VerdictWeeklyLimit,
			fmt.Sprintf("weekly journey of %dmin exceeds the cap of %dmin", total, c.WeeklyCapMinutes),
		)
		verdict.WeeklyMinutes = total
		return verdict, nil
	}

	verdict := schedule.Ok()
	verdict.WeeklyMinutes = total
	return verdict, nil
}

// RequiredBreakMinutes returns the mandatory break for a journey length:
// 60min from six hours, 15min from four hours, none below that.
func RequiredBreakMinutes(journeyMinutes int) int {
	switch {
	case journeyMinutes >= 360:
		return 60
	case journeyMinutes >= 240:
		return 15
	default:
		return 0
	}
}

// ValidateBreak checks that the planned break covers the mandatory minimum
// for the day's journey length. Pure; rest days always pass.
func (v *Validator) ValidateBreak(sched schedule.Schedule) schedule.Verdict {
	if sched.RestDay {
		verdict := schedule.Ok()
		verdict.RequiredBreakMinutes = 0
		return verdict
	}

	required := RequiredBreakMinutes(sched.DurationMinutes())
	if sched.BreakMinutes < required {
		verdict := schedule.Fail(
			schedule.VerdictInsufficientBreak,
			fmt.Sprintf("break of %dmin is below the required %dmin", sched.BreakMinutes, required),
		)
		verdict.RequiredBreakMinutes = required
		return verdict
	}

	verdict := schedule.Ok()
	verdict.RequiredBreakMinutes = required
	return verdict
}

// ValidateRestGap checks the rest between the previous day's shift end and
// the current day's shift start against the configured minimum. The gap wraps
// by 24h when the previous shift ran past midnight.
func (v *Validator) ValidateRestGap(ctx context.Context, employeeID string, date time.Time) (schedule.Verdict, error) {
	current, err := v.scheduleRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return schedule.Verdict{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	if current == nil || current.RestDay || current.StartTime == nil {
		return schedule.Ok(), nil
	}

	previous, err := v.scheduleRepo.GetByEmployeeAndDate(ctx, employeeID, date.AddDate(0, 0, -1))
	if err != nil {
		return schedule.Verdict{}, fmt.Errorf("failed to get previous schedule: %w", err)
	}
	if previous == nil || previous.RestDay || previous.EndTime == nil {
		return schedule.Ok(), nil
	}

	gap := schedule.MinuteOfDay(*current.StartTime) - schedule.MinuteOfDay(*previous.EndTime)
	if gap <= 0 {
		gap += 24 * 60
	}

	minimum := v.settings.MinRestGapMinutes(ctx)
	if gap < minimum {
		verdict := schedule.Fail(
			schedule.VerdictRestGapTooShort,
			fmt.Sprintf("rest gap of %dmin is below the minimum of %dmin", gap, minimum),
		)
		verdict.RestGapMinutes = gap
		return verdict, nil
	}

	verdict := schedule.Ok()
	verdict.RestGapMinutes = gap
	return verdict, nil
}

// ValidateWeeklyRest checks that the 7-day window starting at weekStart
// contains at least one rest day.
func (v *Validator) ValidateWeeklyRest(ctx context.Context, employeeID string, weekStart time.Time) (schedule.Verdict, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)
	schedules, err := v.scheduleRepo.ListByEmployeeAndRange(ctx, employeeID, weekStart, weekEnd)
	if err != nil {
		return schedule.Verdict{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	restDays := 0
	for _, s := range schedules {
		if s.RestDay {
			restDays++
		}
	}

	if restDays == 0 {
		return schedule.Fail(schedule.VerdictNoWeeklyRest, "no weekly rest day found in the window"), nil
	}

	verdict := schedule.Ok()
	verdict.RestDays = restDays
	return verdict, nil
}

// Validate12x36 checks the rules specific to the 12x36 pattern: the contract
// must authorize it, the following day must be a rest day, and the rest gap
// minimum must hold. Schedules of any other shift type pass untouched, as do
// the pattern's embedded rest days.
func (v *Validator) Validate12x36(ctx context.Context, sched schedule.Schedule) (schedule.Verdict, error) {
	if sched.ShiftType != schedule.Shift12x36 || sched.RestDay {
		return schedule.Ok(), nil
	}

	c, err := v.resolver.Resolve(ctx, sched.EmployeeID, sched.Date)
	if err != nil {
		return schedule.Verdict{}, err
	}
	if c == nil || !c.Allow12x36 {
		return schedule.Fail(schedule.VerdictNotAuthorized, "contract does not authorize the 12x36 shift"), nil
	}

	next, err := v.scheduleRepo.GetByEmployeeAndDate(ctx, sched.EmployeeID, sched.Date.AddDate(0, 0, 1))
	if err != nil {
		return schedule.Verdict{}, fmt.Errorf("failed to get next-day schedule: %w", err)
	}
	if next == nil || !next.RestDay {
		return schedule.Fail(schedule.VerdictMissingPairedRest, "12x36 shift requires a rest day on the following date"), nil
	}

	return v.ValidateRestGap(ctx, sched.EmployeeID, sched.Date)
}

// ValidateWeek runs every per-day check over the 7-day window starting at
// weekStart, then the weekly cap and weekly rest checks.
func (v *Validator) ValidateWeek(ctx context.Context, employeeID string, weekStart time.Time) (schedule.WeekValidation, error) {
	result := schedule.WeekValidation{
		WeekStart: weekStart.Format("2006-01-02"),
		Valid:     true,
	}

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)

		day := schedule.DayValidation{Date: date.Format("2006-01-02")}

		daily, err := v.ValidateDailyJourney(ctx, employeeID, date)
		if err != nil {
			return schedule.WeekValidation{}, err
		}
		day.DailyJourney = daily

		restGap, err := v.ValidateRestGap(ctx, employeeID, date)
		if err != nil {
			return schedule.WeekValidation{}, err
		}
		day.RestGap = restGap

		day.Break = schedule.Ok()
		day.Shift12x36 = schedule.Ok()

		sched, err := v.scheduleRepo.GetByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return schedule.WeekValidation{}, fmt.Errorf("failed to get schedule: %w", err)
		}
		if sched != nil {
			day.Break = v.ValidateBreak(*sched)

			shift, err := v.Validate12x36(ctx, *sched)
			if err != nil {
				return schedule.WeekValidation{}, err
			}
			day.Shift12x36 = shift
		}

		if !day.DailyJourney.Valid || !day.Break.Valid || !day.RestGap.Valid || !day.Shift12x36.Valid {
			result.Valid = false
		}

		result.Days = append(result.Days, day)
	}

	weekly, err := v.ValidateWeeklyJourney(ctx, employeeID, weekStart)
	if err != nil {
		return schedule.WeekValidation{}, err
	}
	result.WeeklyJourney = weekly

	weeklyRest, err := v.ValidateWeeklyRest(ctx, employeeID, weekStart)
	if err != nil {
		return schedule.WeekValidation{}, err
	}
	result.WeeklyRest = weeklyRest

	if !weekly.Valid || !weeklyRest.Valid {
		result.Valid = false
	}

	return result, nil
}
