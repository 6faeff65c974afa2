package export_week

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	getWeekViewHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_week_view"
	"github.com/m04kA/SMC-CalendarService/internal/export"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgUnknownFormat    = "неизвестный формат экспорта, ожидается ics или xlsx"
	msgExportFailed     = "не удалось сформировать файл"
)

type Handler struct {
	useCase  GetWeekViewUseCase
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(useCase GetWeekViewUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/calendar/week/export.{format}
// format: ics | xlsx, query params как у недели календаря
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	companyID, err := strconv.ParseInt(vars["companyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/week/export - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	format := vars["format"]
	if format != export.ICSExtension && format != export.XLSXExtension {
		h.logger.Warn("GET /companies/{id}/calendar/week/export - Unknown format: %s", format)
		handlers.RespondBadRequest(w, msgUnknownFormat)
		return
	}

	req, msg, err := getWeekViewHandler.ToUseCaseRequest(companyID, r.URL.Query(), h.location)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/calendar/week/export - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		status, message := getWeekViewHandler.MapError(err)
		h.logger.Error("GET /companies/{id}/calendar/week/export - Failed to build week: company_id=%d, error=%v", companyID, err)
		handlers.RespondError(w, status, message)
		return
	}

	week := ToExportWeek(result, h.location)

	var buf bytes.Buffer
	contentType := export.ICSContentType
	if format == export.XLSXExtension {
		contentType = export.XLSXContentType
		err = export.WriteXLSX(&buf, week)
	} else {
		err = export.WriteICS(&buf, week, h.now())
	}
	if err != nil {
		h.logger.Error("GET /companies/{id}/calendar/week/export - Render failed: company_id=%d, format=%s, error=%v",
			companyID, format, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgExportFailed)
		return
	}

	h.logger.Info("GET /companies/{id}/calendar/week/export - Exported: company_id=%d, format=%s, bytes=%d",
		companyID, format, buf.Len())
	handlers.RespondFile(w, contentType, week.FileName(format), buf.Bytes())
}
