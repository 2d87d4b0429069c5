package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
}

type contractHandlerImpl struct {
	contractService contract.ContractService
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &contractHandlerImpl{
		contractService: contractService,
	}
}

// Create implements ContractHandler.
func (h *contractHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.contractService.CreateContract(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract created successfully", result)
}

// ListByEmployee implements ContractHandler.
func (h *contractHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.contractService.ListContracts(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Current implements ContractHandler.
func (h *contractHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	date, ok := queryDate(r, "date", time.Now().UTC())
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.contractService.CurrentContract(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
