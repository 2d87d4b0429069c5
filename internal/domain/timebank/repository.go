package timebank

import (
	"context"
	"time"
)

// TimebankRepository defines data access methods for the compensatory-hours
// ledger.
type TimebankRepository interface {
	// Upsert inserts the entry or, when one exists for the same employee and
	// reference date, overwrites its credit and debit minutes. The operation
	// must be atomic per (employee, reference date).
	Upsert(ctx context.Context, entry Entry) (Entry, error)

	// Create appends a new entry and fails if the (employee, reference date)
	// pair exists. Used for manual compensation rows.
	Create(ctx context.Context, entry Entry) (Entry, error)

	// GetByEmployeeAndDate returns nil when the pair has no entry.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, referenceDate time.Time) (*Entry, error)

	// ListActive returns the non-compensated entries of an employee.
	ListActive(ctx context.Context, employeeID string) ([]Entry, error)

	// ListExpired returns non-compensated entries with positive balance whose
	// expiry is strictly before asOf, across all employees.
	ListExpired(ctx context.Context, asOf time.Time) ([]Entry, error)

	Update(ctx context.Context, entry Entry) error
}
