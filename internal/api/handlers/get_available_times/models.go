package get_available_times

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getAvailableTimes "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date            string        `json:"date"`
	ProfessionalID  int64         `json:"professionalId"`
	ServiceID       int64         `json:"serviceId"`
	DurationMinutes int           `json:"durationMinutes"`
	Total           int           `json:"total"`
	Periods         PeriodsBlocks `json:"periods"`
	Cached          bool          `json:"cached"`
}

// PeriodsBlocks времена по частям дня
type PeriodsBlocks struct {
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Night     []string `json:"night"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	return &AvailableTimesResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Total:           resp.Times.Total(),
		Periods: PeriodsBlocks{
			Morning:   resp.Times.Morning,
			Afternoon: resp.Times.Afternoon,
			Night:     resp.Times.Night,
		},
		Cached: resp.Cached,
	}
}
