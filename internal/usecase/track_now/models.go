package track_now

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
)

// Scope к чему привязан индикатор
type Scope string

const (
	ScopeDay  Scope = "day"
	ScopeWeek Scope = "week"
)

// Request модель запроса на поток индикатора текущего времени
type Request struct {
	CompanyID int64      // ID компании
	BranchID  *int64     // ID филиала (опционально)
	Date      *time.Time // Отображаемая дата, nil - всегда текущая
	Scope     Scope      // День или неделя отображаемой даты
	Density   *float64   // Переопределение масштаба (опционально)
}

// Update состояние индикатора на очередном тике
type Update struct {
	Time  time.Time
	State calendar.NowState
}
