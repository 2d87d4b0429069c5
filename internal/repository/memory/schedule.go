package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu        sync.RWMutex
	schedules map[string]schedule.Schedule
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{schedules: make(map[string]schedule.Schedule)}
}

func (r *ScheduleRepository) Create(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(sched.EmployeeID, sched.Date)
	if _, ok := r.schedules[key]; ok {
		return schedule.Schedule{}, schedule.ErrScheduleExists
	}

	r.schedules[key] = sched
	return sched, nil
}

func (r *ScheduleRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sched, ok := r.schedules[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &sched, nil
}

func (r *ScheduleRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var schedules []schedule.Schedule
	for _, sched := range r.schedules {
		if sched.EmployeeID != employeeID {
			continue
		}
		if sched.Date.Before(from) || sched.Date.After(to) {
			continue
		}
		schedules = append(schedules, sched)
	}

	sort.Slice(schedules, func(a, b int) bool {
		return schedules[a].Date.Before(schedules[b].Date)
	})

	return schedules, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, sched := range r.schedules {
		if sched.ID == id {
			delete(r.schedules, key)
			return nil
		}
	}
	return schedule.ErrScheduleNotFound
}
