package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func workDay(startHour, startMinute, endHour, endMinute, breakMinutes int) Schedule {
	start := ClockTime(startHour, startMinute)
	end := ClockTime(endHour, endMinute)
	return Schedule{
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    &start,
		EndTime:      &end,
		BreakMinutes: breakMinutes,
	}
}

func TestDurationMinutes(t *testing.T) {
	t.Run("regular day shift", func(t *testing.T) {
		sched := workDay(8, 0, 17, 0, 60)
		assert.Equal(t, 480, sched.DurationMinutes())
	})

	t.Run("twelve hour shift with break", func(t *testing.T) {
		sched := workDay(7, 0, 19, 0, 60)
		assert.Equal(t, 660, sched.DurationMinutes())
	})

	t.Run("shift crossing midnight", func(t *testing.T) {
		sched := workDay(22, 0, 6, 0, 0)
		assert.Equal(t, 480, sched.DurationMinutes())
	})

	t.Run("shift ending exactly at start wraps a full day", func(t *testing.T) {
		sched := workDay(8, 0, 8, 0, 0)
		assert.Equal(t, 1440, sched.DurationMinutes())
	})

	t.Run("rest day has zero duration", func(t *testing.T) {
		sched := Schedule{RestDay: true}
		assert.Equal(t, 0, sched.DurationMinutes())
	})

	t.Run("missing times have zero duration", func(t *testing.T) {
		sched := Schedule{}
		assert.Equal(t, 0, sched.DurationMinutes())
	})
}

func TestMinuteOfDay(t *testing.T) {
	assert.Equal(t, 0, MinuteOfDay(ClockTime(0, 0)))
	assert.Equal(t, 22*60, MinuteOfDay(ClockTime(22, 0)))
	assert.Equal(t, 5*60+30, MinuteOfDay(ClockTime(5, 30)))
}

func TestValidShiftType(t *testing.T) {
	assert.True(t, ValidShiftType(ShiftNormal))
	assert.True(t, ValidShiftType(Shift12x36))
	assert.False(t, ValidShiftType("9x5"))
}
