package timebank

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/clock"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
	"github.com/escalator-hq/escalator-backend-go/internal/service/journey"
)

// expiringWindowDays is how far ahead the balance summary looks for entries
// about to expire.
const expiringWindowDays = 30

type timebankService struct {
	timebankRepo timebank.TimebankRepository
	punchRepo    punch.PunchRepository
	calculator   *journey.Calculator
	resolver     contract.ContractResolver
	settings     *setting.Settings
	tx           database.Transactor
	clock        clock.Clock
}

func NewTimebankService(
	timebankRepo timebank.TimebankRepository,
	punchRepo punch.PunchRepository,
	calculator *journey.Calculator,
	resolver contract.ContractResolver,
	settings *setting.Settings,
	tx database.Transactor,
	clk clock.Clock,
) timebank.TimebankService {
	return &timebankService{
		timebankRepo: timebankRepo,
		punchRepo:    punchRepo,
		calculator:   calculator,
		resolver:     resolver,
		settings:     settings,
		tx:           tx,
		clock:        clk,
	}
}

// UpsertDaily recomputes the ledger entry for one employee and date from the
// punches on record. The write overwrites any previous entry for the pair, so
// re-running after a correction converges on the same row.
func (s *timebankService) UpsertDaily(ctx context.Context, employeeID string, date time.Time) (timebank.Entry, error) {
	date = clock.DateOf(date)

	punches, err := s.punchRepo.ListByEmployeeAndDay(ctx, employeeID, date)
	if err != nil {
		return timebank.Entry{}, fmt.Errorf("failed to list punches: %w", err)
	}

	dayJourney, err := s.calculator.ComputeDailyJourney(ctx, employeeID, date, punches)
	if err != nil {
		return timebank.Entry{}, err
	}

	delta, err := s.calculator.ComputeLedgerDelta(ctx, employeeID, date, dayJourney)
	if err != nil {
		return timebank.Entry{}, err
	}

	expiresAt := date.AddDate(0, s.expiryMonths(ctx, employeeID, date), 0)
	entry := timebank.Entry{
		ID:            uuid.New().String(),
		EmployeeID:    employeeID,
		ReferenceDate: date,
		CreditMinutes: delta.CreditMinutes,
		DebitMinutes:  delta.DebitMinutes,
		ExpiresAt:     &expiresAt,
	}

	stored, err := s.timebankRepo.Upsert(ctx, entry)
	if err != nil {
		return timebank.Entry{}, fmt.Errorf("failed to upsert timebank entry: %w", err)
	}

	return stored, nil
}

func (s *timebankService) expiryMonths(ctx context.Context, employeeID string, date time.Time) int {
	ctr, err := s.resolver.Resolve(ctx, employeeID, date)
	if err == nil && ctr != nil && ctr.ExpiryMonths > 0 {
		return ctr.ExpiryMonths
	}
	return s.settings.ExpiryMonths(ctx)
}

// CurrentBalance aggregates the non-compensated entries of an employee.
func (s *timebankService) CurrentBalance(ctx context.Context, employeeID string) (timebank.BalanceSummary, error) {
	entries, err := s.timebankRepo.ListActive(ctx, employeeID)
	if err != nil {
		return timebank.BalanceSummary{}, fmt.Errorf("failed to list timebank entries: %w", err)
	}

	today := clock.Today(s.clock)
	horizon := today.AddDate(0, 0, expiringWindowDays)

	var summary timebank.BalanceSummary
	for _, e := range entries {
		summary.TotalCredit += e.CreditMinutes
		summary.TotalDebit += e.DebitMinutes
		summary.BalanceMinutes += e.BalanceMinutes()

		// Already-lapsed entries belong to the sweep, not the warning list.
		if e.ExpiresAt != nil && e.BalanceMinutes() > 0 &&
			!e.ExpiresAt.Before(today) && !e.ExpiresAt.After(horizon) {
			summary.ExpiringCount++
			summary.ExpiringMinutes += e.BalanceMinutes()
		}
	}

	return summary, nil
}

// ProcessExpirations settles every positive entry whose expiry passed before
// asOf. The settled minutes go to payroll as overtime; debit rows stay open,
// expiry never forgives a deficit.
func (s *timebankService) ProcessExpirations(ctx context.Context, asOf time.Time) ([]timebank.ExpiredEntry, error) {
	var expired []timebank.ExpiredEntry

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entries, err := s.timebankRepo.ListExpired(ctx, asOf)
		if err != nil {
			return fmt.Errorf("failed to list expired entries: %w", err)
		}

		for _, e := range entries {
			e.Compensated = true
			e.Note = "expired, converted to payable overtime"
			e.UpdatedAt = s.clock.Now()
			if err := s.timebankRepo.Update(ctx, e); err != nil {
				return fmt.Errorf("failed to settle entry %s: %w", e.ID, err)
			}

			expired = append(expired, timebank.ExpiredEntry{
				EntryID:        e.ID,
				EmployeeID:     e.EmployeeID,
				ReferenceDate:  e.ReferenceDate.Format("2006-01-02"),
				ExpiredMinutes: e.BalanceMinutes(),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("timebank expiration sweep finished",
		"as_of", asOf.Format("2006-01-02"),
		"settled", len(expired),
	)

	return expired, nil
}

// Compensate books a manual debit against the employee's balance. The debit
// lands on the compensation date as its own ledger row.
func (s *timebankService) Compensate(ctx context.Context, req timebank.CompensateRequest) (timebank.CompensationResult, error) {
	if err := req.Validate(); err != nil {
		return timebank.CompensationResult{}, err
	}

	compDate, _ := time.Parse("2006-01-02", req.CompensationDate)
	if compDate.Before(clock.Today(s.clock)) {
		return timebank.CompensationResult{}, timebank.ErrPastCompensation
	}

	var result timebank.CompensationResult

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		summary, err := s.CurrentBalance(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if summary.BalanceMinutes < req.Minutes {
			return timebank.ErrInsufficientBalance
		}

		existing, err := s.timebankRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, compDate)
		if err != nil {
			return fmt.Errorf("failed to get timebank entry: %w", err)
		}
		if existing != nil {
			existing.DebitMinutes += req.Minutes
			existing.UpdatedAt = s.clock.Now()
			if err := s.timebankRepo.Update(ctx, *existing); err != nil {
				return fmt.Errorf("failed to update timebank entry: %w", err)
			}
		} else {
			entry := timebank.Entry{
				ID:            uuid.New().String(),
				EmployeeID:    req.EmployeeID,
				ReferenceDate: compDate,
				DebitMinutes:  req.Minutes,
				Note:          "manual compensation",
			}
			if _, err := s.timebankRepo.Create(ctx, entry); err != nil {
				return fmt.Errorf("failed to create compensation entry: %w", err)
			}
		}

		result = timebank.CompensationResult{
			CompensatedMinutes: req.Minutes,
			RemainingBalance:   summary.BalanceMinutes - req.Minutes,
		}

		return nil
	})
	if err != nil {
		return timebank.CompensationResult{}, err
	}

	return result, nil
}

// ListEntries returns the employee's ledger rows, newest first.
func (s *timebankService) ListEntries(ctx context.Context, employeeID string) ([]timebank.EntryResponse, error) {
	entries, err := s.timebankRepo.ListActive(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timebank entries: %w", err)
	}

	responses := make([]timebank.EntryResponse, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		resp := timebank.EntryResponse{
			ID:             e.ID,
			EmployeeID:     e.EmployeeID,
			ReferenceDate:  e.ReferenceDate.Format("2006-01-02"),
			CreditMinutes:  e.CreditMinutes,
			DebitMinutes:   e.DebitMinutes,
			BalanceMinutes: e.BalanceMinutes(),
			Compensated:    e.Compensated,
			Note:           e.Note,
		}
		if e.ExpiresAt != nil {
			v := e.ExpiresAt.Format("2006-01-02")
			resp.ExpiresAt = &v
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
