package get_day_view

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getDayView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_view"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidBranchID       = "некорректный ID филиала"
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidDensity        = "некорректный масштаб"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams         = "некорректные параметры запроса"
	msgCompanyNotFound       = "компания не найдена"
	msgBookingsUnavailable   = "сервис бронирований недоступен"
)

type Handler struct {
	useCase  GetDayViewUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetDayViewUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/calendar/day
// Query params: date (required, YYYY-MM-DD), branchId, professionalId, density (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/day - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/calendar/day - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/day - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	branchID, err := handlers.ParseOptionalID(query.Get("branchId"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}
	professionalID, err := handlers.ParseOptionalID(query.Get("professionalId"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}
	density, err := handlers.ParseOptionalFloat(query.Get("density"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDensity)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayView.Request{
		CompanyID:      companyID,
		BranchID:       branchID,
		ProfessionalID: professionalID,
		Date:           date,
		Density:        density,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayView.ErrInvalidInput):
			h.logger.Warn("GET /companies/{id}/calendar/day - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getDayView.ErrCompanyNotFound):
			h.logger.Warn("GET /companies/{id}/calendar/day - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, getDayView.ErrBookingsUnavailable):
			h.logger.Error("GET /companies/{id}/calendar/day - Bookings unavailable: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadGateway(w, msgBookingsUnavailable)

		default:
			h.logger.Error("GET /companies/{id}/calendar/day - Failed to build day: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companies/{id}/calendar/day - Day retrieved successfully: company_id=%d, date=%s, events=%d",
		companyID, dateStr, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
