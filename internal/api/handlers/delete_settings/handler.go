package delete_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/settings"
	"github.com/m04kA/SMC-CalendarService/internal/service/settings/models"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidBranchID  = "некорректный ID филиала"
	msgNotFound         = "собственные настройки не найдены"
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

// Handle DELETE /api/v1/companies/{companyId}/calendar/settings
// Query params: branchId (опционально). Уровень возвращается к унаследованным настройкам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /companies/{id}/calendar/settings - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	branchID, err := handlers.ParseOptionalID(r.URL.Query().Get("branchId"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	err = h.service.Delete(r.Context(), &models.DeleteSettingsRequest{CompanyID: companyID, BranchID: branchID})
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			h.logger.Warn("DELETE /companies/{id}/calendar/settings - Not found: company_id=%d, branch_id=%v", companyID, branchID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /companies/{id}/calendar/settings - Failed to delete: company_id=%d, error=%v", companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /companies/{id}/calendar/settings - Settings reset: company_id=%d, branch_id=%v", companyID, branchID)
	w.WriteHeader(http.StatusNoContent)
}
