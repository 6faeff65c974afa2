package get_day_view

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на получение дня календаря
type Request struct {
	CompanyID      int64     // ID компании
	BranchID       *int64    // ID филиала (опционально, влияет на настройки и фильтр)
	ProfessionalID *int64    // Фильтр по специалисту (опционально)
	Date           time.Time // Дата (время суток игнорируется)
	Density        *float64  // Переопределение масштаба (опционально)
}

// Response модель дня календаря
type Response struct {
	Date          time.Time             // Полночь дня в часовом поясе календаря
	CompanyID     int64                 // ID компании
	SettingsLevel domain.SettingsLevel  // Откуда взяты настройки
	Config        domain.CalendarConfig // Сетка дня
	LayoutMode    domain.LayoutMode     // Режим раскладки пересечений
	Density       float64               // Масштаб (единиц на минуту)
	Slots         []domain.TimeSlot     // Сетка времени
	Events        []domain.PlacedEvent  // События с колонками и позицией
	IsToday       bool                  // День совпадает с текущим
	Now           *calendar.NowState    // Индикатор текущего времени, только для сегодняшнего дня
	Skipped       int                   // Бронирования вне дня или с некорректной датой/временем
}
