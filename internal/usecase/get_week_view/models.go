package get_week_view

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на получение недели календаря
type Request struct {
	CompanyID      int64     // ID компании
	BranchID       *int64    // ID филиала (опционально)
	ProfessionalID *int64    // Фильтр по специалисту (опционально)
	Date           time.Time // Любая дата внутри недели
	Density        *float64  // Переопределение масштаба (опционально)
}

// Day колонка недели
type Day struct {
	Date    time.Time
	IsToday bool
	Events  []domain.PlacedEvent
}

// Response модель недели календаря
type Response struct {
	CompanyID     int64
	SettingsLevel domain.SettingsLevel
	Config        domain.CalendarConfig
	LayoutMode    domain.LayoutMode
	Density       float64
	Slots         []domain.TimeSlot
	Days          []Day // Ровно 7 дней, с понедельника
	IsCurrentWeek bool
	Now           *calendar.NowState // Только для текущей недели
	Skipped       int
}

// From первый день недели
func (r *Response) From() time.Time {
	return r.Days[0].Date
}

// To последний день недели
func (r *Response) To() time.Time {
	return r.Days[len(r.Days)-1].Date
}

// Events все события недели в порядке дней
func (r *Response) Events() []domain.PlacedEvent {
	var events []domain.PlacedEvent
	for _, day := range r.Days {
		events = append(events, day.Events...)
	}
	return events
}
