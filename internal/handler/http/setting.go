package http

import (
	"encoding/json"
	"net/http"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	"github.com/escalator-hq/escalator-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingRepo setting.SettingRepository
}

func NewSettingHandler(settingRepo setting.SettingRepository) SettingHandler {
	return &settingHandlerImpl{
		settingRepo: settingRepo,
	}
}

type settingPayload struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// List implements SettingHandler.
func (h *settingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payload := make([]settingPayload, 0, len(settings))
	for _, st := range settings {
		payload = append(payload, settingPayload{
			Key:         st.Key,
			Value:       st.Value,
			Description: st.Description,
		})
	}

	response.Success(w, payload)
}

// Upsert implements SettingHandler.
func (h *settingHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req settingPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Key == "" || req.Value == "" {
		response.BadRequest(w, "key and value are required", nil)
		return
	}

	stored, err := h.settingRepo.Upsert(r.Context(), setting.Setting{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settingPayload{
		Key:         stored.Key,
		Value:       stored.Value,
		Description: stored.Description,
	})
}
