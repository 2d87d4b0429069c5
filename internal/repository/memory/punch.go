package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
)

type PunchRepository struct {
	mu      sync.RWMutex
	punches []punch.Punch
}

func NewPunchRepository() *PunchRepository {
	return &PunchRepository{}
}

func (r *PunchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.punches = append(r.punches, p)
	return p, nil
}

func (r *PunchRepository) GetLastForDay(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
	punches, err := r.ListByEmployeeAndDay(ctx, employeeID, date)
	if err != nil || len(punches) == 0 {
		return nil, err
	}

	last := punches[len(punches)-1]
	return &last, nil
}

func (r *PunchRepository) ListByEmployeeAndDay(ctx context.Context, employeeID string, date time.Time) ([]punch.Punch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)

	var punches []punch.Punch
	for _, p := range r.punches {
		if p.EmployeeID != employeeID {
			continue
		}
		if p.Timestamp.Before(dayStart) || !p.Timestamp.Before(dayEnd) {
			continue
		}
		punches = append(punches, p)
	}

	sort.Slice(punches, func(a, b int) bool {
		return punches[a].Timestamp.Before(punches[b].Timestamp)
	})

	return punches, nil
}
