package update_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/settings"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные настройки календаря"
	msgNotFound           = "настройки не найдены"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/companies/{companyId}/calendar/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companies/{id}/calendar/settings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/calendar/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(companyID))
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /companies/{id}/calendar/settings - Invalid data: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidData+": "+err.Error())
			return
		}
		if errors.Is(err, settings.ErrSettingsNotFound) {
			h.logger.Warn("PUT /companies/{id}/calendar/settings - Settings disappeared: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("PUT /companies/{id}/calendar/settings - Failed to update settings: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /companies/{id}/calendar/settings - Settings updated: company_id=%d, settings_id=%d, level=%s",
		companyID, result.ID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
