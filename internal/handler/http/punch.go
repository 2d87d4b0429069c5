package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
	"github.com/escalator-hq/escalator-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	DayOverview(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Register implements PunchHandler.
func (h *punchHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req punch.RegisterPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.punchService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch registered successfully", result)
}

// DayOverview implements PunchHandler.
func (h *punchHandlerImpl) DayOverview(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	date, ok := queryDate(r, "date", time.Now().UTC())
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.punchService.DayOverview(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
