package setting

import (
	"context"
	"strconv"
	"time"
)

// Settings reads typed values out of the repository, falling back to the CLT
// defaults whenever a key is missing or unparseable. The fallbacks keep the
// rule engine usable against an unseeded store.
type Settings struct {
	repo SettingRepository
}

func NewSettings(repo SettingRepository) *Settings {
	return &Settings{repo: repo}
}

// NightWindow returns the night period bounds as minutes of day.
// Default 22:00-05:00; the window wraps midnight when end < start.
func (s *Settings) NightWindow(ctx context.Context) (startMinute, endMinute int) {
	startMinute = s.clockMinutes(ctx, KeyNightPeriodStart, 22*60)
	endMinute = s.clockMinutes(ctx, KeyNightPeriodEnd, 5*60)
	return startMinute, endMinute
}

// NightHourMinutes returns the clock-minute length of one legal night hour.
func (s *Settings) NightHourMinutes(ctx context.Context) float64 {
	raw, err := s.repo.Get(ctx, KeyNightHourMinutes)
	if err != nil {
		return 52.5
	}
	v, err := strconv.ParseFloat(raw.Value, 64)
	if err != nil || v <= 0 {
		return 52.5
	}
	return v
}

// MinRestGapMinutes returns the minimum rest between two shifts.
func (s *Settings) MinRestGapMinutes(ctx context.Context) int {
	return s.intValue(ctx, KeyMinRestGapMinutes, 660)
}

// ExpiryMonths returns the default timebank expiry window.
func (s *Settings) ExpiryMonths(ctx context.Context) int {
	return s.intValue(ctx, KeyExpiryMonths, 12)
}

func (s *Settings) intValue(ctx context.Context, key string, fallback int) int {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return fallback
	}
	v, err := strconv.Atoi(raw.Value)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (s *Settings) clockMinutes(ctx context.Context, key string, fallback int) int {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return fallback
	}
	t, err := time.Parse("15:04", raw.Value)
	if err != nil {
		return fallback
	}
	return t.Hour()*60 + t.Minute()
}
