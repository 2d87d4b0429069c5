package timebank

import (
	"context"
	"time"
)

// TimebankService defines business logic for the compensatory-hours ledger.
type TimebankService interface {
	// UpsertDaily recomputes the ledger entry for an employee and date from
	// that day's punches. Idempotent: repeated calls with unchanged punches
	// leave a single entry with the same credit and debit.
	UpsertDaily(ctx context.Context, employeeID string, date time.Time) (Entry, error)

	// CurrentBalance aggregates the employee's non-compensated entries.
	CurrentBalance(ctx context.Context, employeeID string) (BalanceSummary, error)

	// ProcessExpirations settles every positive, non-compensated entry whose
	// expiry is strictly before asOf and returns what was converted. Debit
	// entries are never forgiven by the sweep.
	ProcessExpirations(ctx context.Context, asOf time.Time) ([]ExpiredEntry, error)

	// Compensate books a manual debit against the employee's balance.
	Compensate(ctx context.Context, req CompensateRequest) (CompensationResult, error)

	// ListEntries returns the employee's ledger rows, newest first.
	ListEntries(ctx context.Context, employeeID string) ([]EntryResponse, error)
}
