package stream_now

import (
	"time"

	trackNow "github.com/m04kA/SMC-CalendarService/internal/usecase/track_now"
)

const eventName = "now"

// NowEvent данные одного SSE события
type NowEvent struct {
	Time    string  `json:"time"`
	Visible bool    `json:"visible"`
	Offset  float64 `json:"offset"`
}

// FromUpdate конвертирует состояние use case в событие
func FromUpdate(u trackNow.Update) NowEvent {
	return NowEvent{
		Time:    u.Time.Format(time.RFC3339),
		Visible: u.State.Visible,
		Offset:  u.State.Offset,
	}
}
