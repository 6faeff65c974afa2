package export_week

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/export"
	getWeekView "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_view"
)

// ToExportWeek конвертирует неделю use case в модель экспорта
func ToExportWeek(resp *getWeekView.Response, loc *time.Location) *export.Week {
	days := make([]export.Day, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = export.Day{Date: day.Date, Events: day.Events}
	}
	return &export.Week{
		CompanyID: resp.CompanyID,
		Location:  loc,
		Slots:     resp.Slots,
		Days:      days,
	}
}
