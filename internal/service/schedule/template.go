package schedule

import (
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
)

// Predefined shift pattern names.
const (
	Template12x36 = "12x36"
	Template6x1   = "6x1"
	Template5x2   = "5x2"
)

// templateDay is one expanded day of a pattern.
type templateDay struct {
	restDay      bool
	startHour    int
	startMinute  int
	endHour      int
	endMinute    int
	breakMinutes int
	shiftType    string
}

// templateDef couples a catalog entry with the function that expands the
// pattern. dayFor receives the pattern's anchor date and the date to expand;
// patterns that ignore calendar weeks count days from the anchor.
type templateDef struct {
	info         schedule.TemplateInfo
	requiresAuth bool
	dayFor       func(anchor, date time.Time) templateDay
}

var templates = map[string]templateDef{
	Template12x36: {
		info: schedule.TemplateInfo{
			Name:        Template12x36,
			Description: "12 hours on, 36 hours off, alternating work and rest days",
			WorkHours:   12,
			RestHours:   36,
			Legal:       true,
			Notes:       "requires contract authorization",
		},
		requiresAuth: true,
		dayFor: func(anchor, date time.Time) templateDay {
			// Rest days keep the 12x36 tag; they are part of the pattern.
			if daysBetween(anchor, date)%2 != 0 {
				return templateDay{restDay: true, shiftType: schedule.Shift12x36}
			}
			return templateDay{
				startHour:    7,
				endHour:      19,
				breakMinutes: 60,
				shiftType:    schedule.Shift12x36,
			}
		},
	},
	Template6x1: {
		info: schedule.TemplateInfo{
			Name:        Template6x1,
			Description: "six work days followed by one rest day, regardless of calendar weeks",
			WorkHours:   8,
			RestHours:   16,
			Legal:       true,
		},
		dayFor: func(anchor, date time.Time) templateDay {
			if daysBetween(anchor, date)%7 == 6 {
				return templateDay{restDay: true}
			}
			return templateDay{
				startHour:    8,
				endHour:      17,
				breakMinutes: 60,
				shiftType:    schedule.ShiftNormal,
			}
		},
	},
	Template5x2: {
		info: schedule.TemplateInfo{
			Name:        Template5x2,
			Description: "Monday to Friday work, weekend rest",
			WorkHours:   8,
			RestHours:   16,
			Legal:       true,
		},
		dayFor: func(anchor, date time.Time) templateDay {
			switch date.Weekday() {
			case time.Saturday, time.Sunday:
				return templateDay{restDay: true}
			}
			return templateDay{
				startHour:    8,
				endHour:      17,
				breakMinutes: 60,
				shiftType:    schedule.ShiftNormal,
			}
		},
	},
}

func daysBetween(anchor, date time.Time) int {
	return int(date.Sub(anchor) / (24 * time.Hour))
}

// toSchedule materializes one expanded day for an employee.
func (d templateDay) toSchedule(employeeID string, date time.Time) schedule.Schedule {
	s := schedule.Schedule{
		EmployeeID: employeeID,
		Date:       date,
		RestDay:    d.restDay,
		ShiftType:  d.shiftType,
	}
	if s.ShiftType == "" {
		s.ShiftType = schedule.ShiftNormal
	}
	if d.restDay {
		return s
	}

	start := schedule.ClockTime(d.startHour, d.startMinute)
	end := schedule.ClockTime(d.endHour, d.endMinute)
	s.StartTime = &start
	s.EndTime = &end
	s.BreakMinutes = d.breakMinutes

	return s
}

// minCatalogRestHours is the shortest daily rest a published pattern may
// advertise.
const minCatalogRestHours = 11

// catalogLegal rechecks the catalog flag against the policy ceilings so the
// published catalog can never advertise a pattern above the legal maximum.
func catalogLegal(def templateDef) bool {
	return def.info.Legal &&
		def.info.WorkHours*60 <= contract.MaxDailyCapMinutes &&
		def.info.RestHours >= minCatalogRestHours
}
