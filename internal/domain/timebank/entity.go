package timebank

import (
	"time"
)

// Entry is one compensatory-hours ledger row: the credit/debit computed for
// one employee on one reference date. Unique per (employee, reference date);
// the daily recompute overwrites credit and debit in place.
type Entry struct {
	ID            string
	EmployeeID    string
	ReferenceDate time.Time
	CreditMinutes int
	DebitMinutes  int
	ExpiresAt     *time.Time
	Compensated   bool
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BalanceMinutes returns the net minutes of the entry.
func (e Entry) BalanceMinutes() int {
	return e.CreditMinutes - e.DebitMinutes
}
