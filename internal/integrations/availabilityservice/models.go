package availabilityservice

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// AvailableTimesResponse свободное время специалиста на дату
type AvailableTimesResponse struct {
	Date            string   `json:"date"`
	ProfessionalID  int64    `json:"professionalId"`
	ServiceID       int64    `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	AvailableTimes  []string `json:"availableTimes"` // HH:MM
}

// ToDomain конвертирует ответ сервиса в domain модель
func (r *AvailableTimesResponse) ToDomain() *domain.AvailabilityResult {
	times := r.AvailableTimes
	if times == nil {
		times = []string{}
	}

	return &domain.AvailabilityResult{
		Date:            r.Date,
		ProfessionalID:  r.ProfessionalID,
		ServiceID:       r.ServiceID,
		DurationMinutes: r.DurationMinutes,
		AvailableTimes:  times,
	}
}
