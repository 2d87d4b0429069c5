package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
)

type TimebankRepository struct {
	mu      sync.RWMutex
	entries map[string]timebank.Entry
}

func NewTimebankRepository() *TimebankRepository {
	return &TimebankRepository{entries: make(map[string]timebank.Entry)}
}

func (r *TimebankRepository) Upsert(ctx context.Context, entry timebank.Entry) (timebank.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(entry.EmployeeID, entry.ReferenceDate)
	if existing, ok := r.entries[key]; ok {
		existing.CreditMinutes = entry.CreditMinutes
		existing.DebitMinutes = entry.DebitMinutes
		existing.ExpiresAt = entry.ExpiresAt
		r.entries[key] = existing
		return existing, nil
	}

	r.entries[key] = entry
	return entry, nil
}

func (r *TimebankRepository) Create(ctx context.Context, entry timebank.Entry) (timebank.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(entry.EmployeeID, entry.ReferenceDate)
	if _, ok := r.entries[key]; ok {
		return timebank.Entry{}, timebank.ErrEntryNotFound
	}

	r.entries[key] = entry
	return entry, nil
}

func (r *TimebankRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, referenceDate time.Time) (*timebank.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[dayKey(employeeID, referenceDate)]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (r *TimebankRepository) ListActive(ctx context.Context, employeeID string) ([]timebank.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []timebank.Entry
	for _, entry := range r.entries {
		if entry.EmployeeID == employeeID && !entry.Compensated {
			entries = append(entries, entry)
		}
	}

	sortByReferenceDate(entries)

	return entries, nil
}

func (r *TimebankRepository) ListExpired(ctx context.Context, asOf time.Time) ([]timebank.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []timebank.Entry
	for _, entry := range r.entries {
		if entry.Compensated || entry.ExpiresAt == nil {
			continue
		}
		if !entry.ExpiresAt.Before(asOf) {
			continue
		}
		if entry.BalanceMinutes() <= 0 {
			continue
		}
		entries = append(entries, entry)
	}

	sortByReferenceDate(entries)

	return entries, nil
}

func (r *TimebankRepository) Update(ctx context.Context, entry timebank.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dayKey(entry.EmployeeID, entry.ReferenceDate)
	if _, ok := r.entries[key]; !ok {
		return timebank.ErrEntryNotFound
	}

	r.entries[key] = entry
	return nil
}

func sortByReferenceDate(entries []timebank.Entry) {
	sort.Slice(entries, func(a, b int) bool {
		return entries[a].ReferenceDate.Before(entries[b].ReferenceDate)
	})
}
