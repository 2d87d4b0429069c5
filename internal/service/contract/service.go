package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
)

type contractService struct {
	contractRepo contract.ContractRepository
	employeeRepo employee.EmployeeRepository
	resolver     contract.ContractResolver
}

func NewContractService(
	contractRepo contract.ContractRepository,
	employeeRepo employee.EmployeeRepository,
	resolver contract.ContractResolver,
) contract.ContractService {
	return &contractService{
		contractRepo: contractRepo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
	}
}

func (s *contractService) CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return contract.ContractResponse{}, err
	}

	validFrom, _ := time.Parse("2006-01-02", req.ValidFrom)

	ctr := contract.Contract{
		ID:                 uuid.New().String(),
		EmployeeID:         req.EmployeeID,
		DailyCapMinutes:    req.DailyCapMinutes,
		WeeklyCapMinutes:   req.WeeklyCapMinutes,
		OvertimeCapMinutes: req.OvertimeCapMinutes,
		ExpiryMonths:       req.ExpiryMonths,
		Allow12x36:         req.Allow12x36,
		ValidFrom:          validFrom,
	}
	if req.ValidUntil != nil {
		validUntil, _ := time.Parse("2006-01-02", *req.ValidUntil)
		ctr.ValidUntil = &validUntil
	}

	stored, err := s.contractRepo.Create(ctx, ctr)
	if err != nil {
		return contract.ContractResponse{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return toResponse(stored), nil
}

func (s *contractService) ListContracts(ctx context.Context, employeeID string) ([]contract.ContractResponse, error) {
	contracts, err := s.contractRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, toResponse(c))
	}

	return responses, nil
}

func (s *contractService) CurrentContract(ctx context.Context, employeeID string, date time.Time) (contract.ContractResponse, error) {
	ctr, err := s.resolver.Resolve(ctx, employeeID, date)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	if ctr == nil {
		return contract.ContractResponse{}, contract.ErrNoContractInForce
	}

	return toResponse(*ctr), nil
}

func toResponse(c contract.Contract) contract.ContractResponse {
	resp := contract.ContractResponse{
		ID:                 c.ID,
		EmployeeID:         c.EmployeeID,
		DailyCapMinutes:    c.DailyCapMinutes,
		WeeklyCapMinutes:   c.WeeklyCapMinutes,
		OvertimeCapMinutes: c.OvertimeCapMinutes,
		ExpiryMonths:       c.ExpiryMonths,
		Allow12x36:         c.Allow12x36,
		ValidFrom:          c.ValidFrom.Format("2006-01-02"),
	}
	if c.ValidUntil != nil {
		v := c.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &v
	}
	return resp
}
