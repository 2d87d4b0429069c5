package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
	"github.com/escalator-hq/escalator-backend-go/internal/handler/http/response"
)

type TimebankHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	Compensate(w http.ResponseWriter, r *http.Request)
	ProcessExpirations(w http.ResponseWriter, r *http.Request)
}

type timebankHandlerImpl struct {
	timebankService timebank.TimebankService
}

func NewTimebankHandler(timebankService timebank.TimebankService) TimebankHandler {
	return &timebankHandlerImpl{
		timebankService: timebankService,
	}
}

// Balance implements TimebankHandler.
func (h *timebankHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.timebankService.CurrentBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEntries implements TimebankHandler.
func (h *timebankHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.timebankService.ListEntries(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Compensate implements TimebankHandler.
func (h *timebankHandlerImpl) Compensate(w http.ResponseWriter, r *http.Request) {
	var req timebank.CompensateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.timebankService.Compensate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation booked successfully", result)
}

// ProcessExpirations implements TimebankHandler.
func (h *timebankHandlerImpl) ProcessExpirations(w http.ResponseWriter, r *http.Request) {
	asOf, ok := queryDate(r, "as_of", time.Now().UTC())
	if !ok {
		response.BadRequest(w, "as_of must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.timebankService.ProcessExpirations(r.Context(), asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expiration sweep finished", result)
}
