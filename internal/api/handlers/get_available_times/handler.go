package get_available_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getAvailableTimes "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_times"
)

const (
	msgInvalidProfessionalID   = "некорректный ID специалиста"
	msgInvalidServiceID        = "некорректный ID услуги"
	msgMissingParams           = "дата, ID специалиста и ID услуги обязательны"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast              = "дата в прошлом"
	msgInvalidParams           = "некорректные параметры запроса"
	msgProfessionalNotFound    = "специалист или услуга не найдены"
	msgAvailabilityUnavailable = "сервис доступности недоступен"
)

type Handler struct {
	useCase  GetAvailableTimesUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/widget/available-times
// Query params: date, professionalId, serviceId (required)
// Публичный endpoint виджета - ограничен по частоте запросов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr, professionalStr, serviceStr := query.Get("date"), query.Get("professionalId"), query.Get("serviceId")
	if dateStr == "" || professionalStr == "" || serviceStr == "" {
		h.logger.Warn("GET /widget/available-times - Missing parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	professionalID, err := strconv.ParseInt(professionalStr, 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceStr, 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		Date:           date,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /widget/available-times - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableTimes.ErrInvalidDate):
			h.logger.Warn("GET /widget/available-times - Date in past: %s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableTimes.ErrProfessionalNotFound):
			h.logger.Warn("GET /widget/available-times - Not found: professional_id=%d, service_id=%d", professionalID, serviceID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableTimes.ErrAvailabilityUnavailable):
			h.logger.Error("GET /widget/available-times - Availability unavailable: %v", err)
			handlers.RespondBadGateway(w, msgAvailabilityUnavailable)

		default:
			h.logger.Error("GET /widget/available-times - Failed to get times: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /widget/available-times - Times retrieved: professional_id=%d, service_id=%d, total=%d, cached=%t",
		professionalID, serviceID, result.Times.Total(), result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
