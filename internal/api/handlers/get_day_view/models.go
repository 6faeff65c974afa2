package get_day_view

import (
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getDayView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_view"
)

// DayViewResponse HTTP response model
type DayViewResponse struct {
	Date          string                   `json:"date"`
	CompanyID     int64                    `json:"companyId"`
	SettingsLevel string                   `json:"settingsLevel"`
	Grid          handlers.GridResponse    `json:"grid"`
	LayoutMode    string                   `json:"layoutMode"`
	Density       float64                  `json:"density"`
	Slots         []handlers.SlotResponse  `json:"slots"`
	Events        []handlers.EventResponse `json:"events"`
	IsToday       bool                     `json:"isToday"`
	Now           *handlers.NowResponse    `json:"now,omitempty"`
	Skipped       int                      `json:"skipped"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayView.Response) *DayViewResponse {
	return &DayViewResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		CompanyID:     resp.CompanyID,
		SettingsLevel: string(resp.SettingsLevel),
		Grid:          handlers.FromConfig(resp.Config),
		LayoutMode:    string(resp.LayoutMode),
		Density:       resp.Density,
		Slots:         handlers.FromSlots(resp.Slots),
		Events:        handlers.FromPlacedEvents(resp.Events),
		IsToday:       resp.IsToday,
		Now:           handlers.FromNowState(resp.Now),
		Skipped:       resp.Skipped,
	}
}
