package journey

import (
	"context"
	"sort"
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
)

// Calculator turns a day's punches into worked-minute totals and ledger
// deltas. Work runs from each entry to the next exit; breaks run from each
// break_start to the next break_end and are subtracted from the worked time.
type Calculator struct {
	resolver contract.ContractResolver
	settings *setting.Settings
}

func NewCalculator(resolver contract.ContractResolver, settings *setting.Settings) *Calculator {
	return &Calculator{
		resolver: resolver,
		settings: settings,
	}
}

type interval struct {
	start time.Time
	end   time.Time
}

func (i interval) minutes() int {
	return int(i.end.Sub(i.start) / time.Minute)
}

// pairIntervals pairs the i-th opening punch with the i-th closing punch in
// timestamp order. An opening punch without a matching close is dropped; the
// day is simply still in progress.
func pairIntervals(punches []punch.Punch, open, close string) []interval {
	sorted := make([]punch.Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Timestamp.Before(sorted[b].Timestamp)
	})

	var opens, closes []time.Time
	for _, p := range sorted {
		switch p.Type {
		case open:
			opens = append(opens, p.Timestamp)
		case close:
			closes = append(closes, p.Timestamp)
		}
	}

	var intervals []interval
	for i := 0; i < len(opens) && i < len(closes); i++ {
		if closes[i].After(opens[i]) {
			intervals = append(intervals, interval{start: opens[i], end: closes[i]})
		}
	}

	return intervals
}

// nightMinutes counts, minute by minute, how much of the interval falls
// inside the night window. The window wraps midnight when its start minute is
// later than its end minute.
func nightMinutes(iv interval, windowStart, windowEnd int) int {
	count := 0
	for t := iv.start; t.Before(iv.end); t = t.Add(time.Minute) {
		m := t.Hour()*60 + t.Minute()
		var inside bool
		if windowStart > windowEnd {
			inside = m >= windowStart || m < windowEnd
		} else {
			inside = m >= windowStart && m < windowEnd
		}
		if inside {
			count++
		}
	}
	return count
}

// ComputeDailyJourney builds the minute breakdown for one day. Worked minutes
// inside the night window count as reduced legal hours; minutes up to the
// contract's daily cap are normal and the remainder is overtime.
func (c *Calculator) ComputeDailyJourney(
	ctx context.Context,
	employeeID string,
	date time.Time,
	punches []punch.Punch,
) (punch.DayJourney, error) {
	work := pairIntervals(punches, punch.TypeEntry, punch.TypeExit)
	breaks := pairIntervals(punches, punch.TypeBreakStart, punch.TypeBreakEnd)

	worked := 0
	rawNight := 0
	windowStart, windowEnd := c.settings.NightWindow(ctx)
	for _, iv := range work {
		worked += iv.minutes()
		rawNight += nightMinutes(iv, windowStart, windowEnd)
	}

	breakTotal := 0
	for _, iv := range breaks {
		breakTotal += iv.minutes()
	}
	worked -= breakTotal
	if worked < 0 {
		worked = 0
	}

	// Truncated, not rounded; partial legal minutes are never granted.
	nightHour := c.settings.NightHourMinutes(ctx)
	legalNight := int(float64(rawNight) / nightHour * 60)

	dailyCap := contract.DefaultDailyCapMinutes
	ctr, err := c.resolver.Resolve(ctx, employeeID, date)
	if err != nil {
		return punch.DayJourney{}, err
	}
	if ctr != nil {
		dailyCap = ctr.DailyCapMinutes
	}

	normal := worked
	overtime := 0
	if worked > dailyCap {
		normal = dailyCap
		overtime = worked - dailyCap
	}

	return punch.DayJourney{
		NormalMinutes:      normal,
		OvertimeMinutes:    overtime,
		NightMinutes:       legalNight,
		NightClockMinutes:  rawNight,
		TotalWorkedMinutes: worked,
		BreakMinutes:       breakTotal,
	}, nil
}

// ComputeLedgerDelta compares the worked minutes against the contract's daily
// cap and returns the day's time-bank movement. Surplus credits are capped by
// the contract's overtime ceiling; any excess above the cap is left for
// payroll. Deficits debit in full.
func (c *Calculator) ComputeLedgerDelta(
	ctx context.Context,
	employeeID string,
	date time.Time,
	journey punch.DayJourney,
) (timebank.LedgerDelta, error) {
	dailyCap := contract.DefaultDailyCapMinutes
	overtimeCap := contract.DefaultOvertimeCapMinutes
	ctr, err := c.resolver.Resolve(ctx, employeeID, date)
	if err != nil {
		return timebank.LedgerDelta{}, err
	}
	if ctr != nil {
		dailyCap = ctr.DailyCapMinutes
		overtimeCap = ctr.OvertimeCapMinutes
	}

	diff := journey.TotalWorkedMinutes - dailyCap
	switch {
	case diff > 0:
		if diff > overtimeCap {
			diff = overtimeCap
		}
		return timebank.LedgerDelta{CreditMinutes: diff}, nil
	case diff < 0:
		return timebank.LedgerDelta{DebitMinutes: -diff}, nil
	}

	return timebank.LedgerDelta{}, nil
}
