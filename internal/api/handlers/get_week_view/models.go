package get_week_view

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getWeekView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_view"
)

// WeekViewResponse HTTP response model
type WeekViewResponse struct {
	From          string                  `json:"from"`
	To            string                  `json:"to"`
	CompanyID     int64                   `json:"companyId"`
	SettingsLevel string                  `json:"settingsLevel"`
	Grid          handlers.GridResponse   `json:"grid"`
	LayoutMode    string                  `json:"layoutMode"`
	Density       float64                 `json:"density"`
	Slots         []handlers.SlotResponse `json:"slots"`
	Days          []DayResponse           `json:"days"`
	IsCurrentWeek bool                    `json:"isCurrentWeek"`
	Now           *handlers.NowResponse   `json:"now,omitempty"`
	Skipped       int                     `json:"skipped"`
}

// DayResponse колонка недели
type DayResponse struct {
	Date    string                   `json:"date"`
	Weekday string                   `json:"weekday"`
	IsToday bool                     `json:"isToday"`
	Events  []handlers.EventResponse `json:"events"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekView.Response) *WeekViewResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayResponse{
			Date:    day.Date.Format(domain.DateFormat),
			Weekday: day.Date.Weekday().String(),
			IsToday: day.IsToday,
			Events:  handlers.FromPlacedEvents(day.Events),
		}
	}

	return &WeekViewResponse{
		From:          resp.From().Format(domain.DateFormat),
		To:            resp.To().Format(domain.DateFormat),
		CompanyID:     resp.CompanyID,
		SettingsLevel: string(resp.SettingsLevel),
		Grid:          handlers.FromConfig(resp.Config),
		LayoutMode:    string(resp.LayoutMode),
		Density:       resp.Density,
		Slots:         handlers.FromSlots(resp.Slots),
		Days:          days,
		IsCurrentWeek: resp.IsCurrentWeek,
		Now:           handlers.FromNowState(resp.Now),
		Skipped:       resp.Skipped,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Используется также обработчиком экспорта недели.
func ToUseCaseRequest(companyID int64, query url.Values, loc *time.Location) (*getWeekView.Request, string, error) {
	dateStr := query.Get("date")
	if dateStr == "" {
		return nil, msgMissingDate, errMissingDate
	}
	date, err := handlers.ParseDate(dateStr, loc)
	if err != nil {
		return nil, msgInvalidDate, err
	}

	branchID, err := handlers.ParseOptionalID(query.Get("branchId"))
	if err != nil {
		return nil, msgInvalidBranchID, err
	}
	professionalID, err := handlers.ParseOptionalID(query.Get("professionalId"))
	if err != nil {
		return nil, msgInvalidProfessionalID, err
	}
	density, err := handlers.ParseOptionalFloat(query.Get("density"))
	if err != nil {
		return nil, msgInvalidDensity, err
	}

	return &getWeekView.Request{
		CompanyID:      companyID,
		BranchID:       branchID,
		ProfessionalID: professionalID,
		Date:           date,
		Density:        density,
	}, "", nil
}
