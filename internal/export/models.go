package export

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Week неделя календаря для экспорта
type Week struct {
	CompanyID int64
	Location  *time.Location
	Slots     []domain.TimeSlot
	Days      []Day
}

// Day день недели с уже размещенными событиями
type Day struct {
	Date   time.Time
	Events []domain.PlacedEvent
}

// From первый день недели
func (w *Week) From() time.Time {
	if len(w.Days) == 0 {
		return time.Time{}
	}
	return w.Days[0].Date
}

// To последний день недели
func (w *Week) To() time.Time {
	if len(w.Days) == 0 {
		return time.Time{}
	}
	return w.Days[len(w.Days)-1].Date
}

// FileName имя файла экспорта с расширением ext
func (w *Week) FileName(ext string) string {
	return "calendar_" + w.From().Format(domain.DateFormat) + "_" + w.To().Format(domain.DateFormat) + "." + ext
}
