package get_available_times

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса доступных времен для виджета
type Request struct {
	Date           time.Time // Дата (без времени)
	ProfessionalID int64     // ID специалиста
	ServiceID      int64     // ID услуги
}

// Response модель ответа с доступными временами
type Response struct {
	Date            time.Time
	ProfessionalID  int64
	ServiceID       int64
	DurationMinutes int
	Times           domain.GroupedTimes // Времена по частям дня
	Cached          bool                // Ответ взят из кеша
}
