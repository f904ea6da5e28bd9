package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
	"github.com/hrpulse/attendance-backend-go/internal/handler/http/middleware"
	"github.com/hrpulse/attendance-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetAll implements SettingsHandler.
func (h *settingsHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.settingsService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]settings.SettingResponse, 0, len(all))
	for _, s := range all {
		responses = append(responses, settings.SettingResponse{
			Key:       s.Key,
			Value:     s.Value,
			UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
		})
	}

	response.Success(w, responses)
}

// Update implements SettingsHandler.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UpdatedBy = middleware.EmployeeID(r)

	updated, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting updated", settings.SettingResponse{
		Key:       updated.Key,
		Value:     updated.Value,
		UpdatedAt: updated.UpdatedAt.Format(time.RFC3339),
	})
}
