package get_week_view

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getWeekView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_view"
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
	msgInternalError         = "внутренняя ошибка сервера"
)

var errMissingDate = errors.New("date is required")

type Handler struct {
	useCase  GetWeekViewUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetWeekViewUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/calendar/week
// Query params: date (required, любая дата недели), branchId, professionalId, density (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/week - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	req, msg, err := ToUseCaseRequest(companyID, r.URL.Query(), h.location)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/week - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		status, message := MapError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /companies/{id}/calendar/week - Failed to build week: company_id=%d, error=%v", companyID, err)
		} else {
			h.logger.Warn("GET /companies/{id}/calendar/week - Request rejected: company_id=%d, error=%v", companyID, err)
		}
		handlers.RespondError(w, status, message)
		return
	}

	h.logger.Info("GET /companies/{id}/calendar/week - Week retrieved successfully: company_id=%d, from=%s",
		companyID, result.From().Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// MapError сопоставляет ошибку use case со статусом и сообщением HTTP
func MapError(err error) (int, string) {
	switch {
	case errors.Is(err, getWeekView.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidParams
	case errors.Is(err, getWeekView.ErrCompanyNotFound):
		return http.StatusNotFound, msgCompanyNotFound
	case errors.Is(err, getWeekView.ErrBookingsUnavailable):
		return http.StatusBadGateway, msgBookingsUnavailable
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}
