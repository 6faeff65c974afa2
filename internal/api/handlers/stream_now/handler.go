package stream_now

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	trackNow "github.com/m04kA/SMC-CalendarService/internal/usecase/track_now"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidBranchID  = "некорректный ID филиала"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDensity   = "некорректный масштаб"
	msgInvalidParams    = "некорректные параметры запроса"
	msgNotSupported     = "потоковая передача не поддерживается"
)

type Handler struct {
	useCase  TrackNowUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase TrackNowUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/calendar/now
// Query params: date, scope (day|week), branchId, density (опционально)
// Server-Sent Events: событие "now" сразу и на каждом тике, пока клиент подключен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := strconv.ParseInt(mux.Vars(r)["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/now - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	query := r.URL.Query()
	req := &trackNow.Request{
		CompanyID: companyID,
		Scope:     trackNow.Scope(query.Get("scope")),
	}

	if req.BranchID, err = handlers.ParseOptionalID(query.Get("branchId")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}
	if req.Density, err = handlers.ParseOptionalFloat(query.Get("density")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidDensity)
		return
	}
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := handlers.ParseDate(dateStr, h.location)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /companies/{id}/calendar/now - ResponseWriter does not support flushing")
		handlers.RespondInternalError(w)
		return
	}

	started := false
	err = h.useCase.Execute(r.Context(), req, func(u trackNow.Update) {
		if !started {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if err := writeEvent(w, FromUpdate(u)); err != nil {
			h.logger.Warn("GET /companies/{id}/calendar/now - Write failed: company_id=%d, error=%v", companyID, err)
			return
		}
		flusher.Flush()
	})
	if err == nil {
		h.logger.Info("GET /companies/{id}/calendar/now - Client disconnected: company_id=%d", companyID)
		return
	}

	// После начала потока статус уже отправлен
	if started {
		h.logger.Error("GET /companies/{id}/calendar/now - Stream aborted: company_id=%d, error=%v", companyID, err)
		return
	}
	if errors.Is(err, trackNow.ErrInvalidInput) {
		h.logger.Warn("GET /companies/{id}/calendar/now - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	h.logger.Error("GET /companies/{id}/calendar/now - Failed to start stream: company_id=%d, error=%v", companyID, err)
	handlers.RespondInternalError(w)
}

func writeEvent(w http.ResponseWriter, event NowEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, data)
	return err
}
