package timebank

import (
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/validator"
)

// LedgerDelta is the daily credit/debit derived from worked versus contracted
// minutes. At most one of Credit/Debit is non-zero.
type LedgerDelta struct {
	CreditMinutes int `json:"credit_minutes"`
	DebitMinutes  int `json:"debit_minutes"`
}

// BalanceSummary aggregates the non-compensated ledger of one employee.
// "Expiring" covers entries whose expiry falls within the next 30 days.
type BalanceSummary struct {
	BalanceMinutes  int `json:"balance_minutes"`
	TotalCredit     int `json:"total_credit_minutes"`
	TotalDebit      int `json:"total_debit_minutes"`
	ExpiringCount   int `json:"expiring_count"`
	ExpiringMinutes int `json:"expiring_minutes"`
}

// ExpiredEntry summarizes one ledger row settled by the expiration sweep.
// The minutes are handed to payroll for payout as overtime.
type ExpiredEntry struct {
	EntryID        string `json:"entry_id"`
	EmployeeID     string `json:"employee_id"`
	ReferenceDate  string `json:"reference_date"`
	ExpiredMinutes int    `json:"expired_minutes"`
}

type CompensateRequest struct {
	EmployeeID       string `json:"employee_id"`
	Minutes          int    `json:"minutes"`
	CompensationDate string `json:"compensation_date"`
}

func (r *CompensateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Minutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "minutes",
			Message: "minutes must be positive",
		})
	}

	if _, ok := validator.IsValidDate(r.CompensationDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "compensation_date",
			Message: "compensation_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompensationResult struct {
	CompensatedMinutes int `json:"compensated_minutes"`
	RemainingBalance   int `json:"remaining_balance_minutes"`
}

type EntryResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	ReferenceDate  string  `json:"reference_date"`
	CreditMinutes  int     `json:"credit_minutes"`
	DebitMinutes   int     `json:"debit_minutes"`
	BalanceMinutes int     `json:"balance_minutes"`
	ExpiresAt      *string `json:"expires_at,omitempty"`
	Compensated    bool    `json:"compensated"`
	Note           string  `json:"note,omitempty"`
}
