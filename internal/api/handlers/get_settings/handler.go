package get_settings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidParams    = "некорректные параметры запроса"
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

// Handle GET /api/v1/companies/{companyId}/calendar/settings
// Query params: branchId (опционально), all=true - все сохраненные настройки компании
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("GET /companies/{id}/calendar/settings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	if r.URL.Query().Get("all") == "true" {
		list, err := h.service.GetAllByCompany(r.Context(), companyID)
		if err != nil {
			h.logger.Error("GET /companies/{id}/calendar/settings - Failed to list settings: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, list)
		return
	}

	serviceReq, err := ToServiceRequest(companyID, r.URL.Query().Get("branchId"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/settings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Настройки с иерархическим поиском, при отсутствии - значения по умолчанию
	result, err := h.service.GetEffective(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /companies/{id}/calendar/settings - Failed to get settings: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/calendar/settings - Settings retrieved: company_id=%d, level=%s",
		companyID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
