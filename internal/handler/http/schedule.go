package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/handler/http/response"
	"github.com/escalator-hq/escalator-backend-go/internal/service/workrule"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
	ApplyTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	ValidateWeek(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
	validator       *workrule.Validator
}

func NewScheduleHandler(scheduleService schedule.ScheduleService, validator *workrule.Validator) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
		validator:       validator,
	}
}

// Create implements ScheduleHandler.
func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule created successfully", result)
}

// GetDay implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	date, ok := queryDate(r, "date", time.Time{})
	if !ok || date.IsZero() {
		response.BadRequest(w, "date is required in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.scheduleService.GetDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListRange implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	from, okFrom := queryDate(r, "from", time.Time{})
	to, okTo := queryDate(r, "to", time.Time{})
	if !okFrom || !okTo || from.IsZero() || to.IsZero() {
		response.BadRequest(w, "from and to are required in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.scheduleService.ListRange(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApplyTemplate implements ScheduleHandler.
func (h *scheduleHandlerImpl) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req schedule.ApplyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.scheduleService.ApplyTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template applied successfully", result)
}

// ListTemplates implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.scheduleService.ListTemplates())
}

// ValidateWeek implements ScheduleHandler.
func (h *scheduleHandlerImpl) ValidateWeek(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	weekStart, ok := queryDate(r, "week_start", time.Time{})
	if !ok || weekStart.IsZero() {
		response.BadRequest(w, "week_start is required in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.validator.ValidateWeek(r.Context(), employeeID, weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
