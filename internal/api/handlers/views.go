package handlers

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Общие модели ответов дня и недели календаря

type SlotResponse struct {
	Time  string `json:"time"`
	Label string `json:"label"`
}

type GridResponse struct {
	StartHour    int `json:"startHour"`
	EndHour      int `json:"endHour"`
	SlotInterval int `json:"slotInterval"`
}

type EventResponse struct {
	ID               string  `json:"id"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
	Status           string  `json:"status"`
	Color            string  `json:"color"`
	Title            string  `json:"title"`
	ServiceName      string  `json:"serviceName"`
	CustomerName     string  `json:"customerName"`
	ProfessionalName string  `json:"professionalName"`
	ProfessionalID   int64   `json:"professionalId"`
	ColumnIndex      int     `json:"columnIndex"`
	TotalColumns     int     `json:"totalColumns"`
	Offset           float64 `json:"offset"`
	Extent           float64 `json:"extent"`
}

type NowResponse struct {
	Visible bool    `json:"visible"`
	Offset  float64 `json:"offset"`
}

func FromSlots(slots []domain.TimeSlot) []SlotResponse {
	result := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = SlotResponse{Time: slot.Time.String(), Label: slot.Label}
	}
	return result
}

func FromConfig(cfg domain.CalendarConfig) GridResponse {
	return GridResponse{
		StartHour:    cfg.StartHour,
		EndHour:      cfg.EndHour,
		SlotInterval: cfg.SlotInterval,
	}
}

func FromPlacedEvents(events []domain.PlacedEvent) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, placed := range events {
		e := placed.Event
		result[i] = EventResponse{
			ID:               e.ID,
			Start:            e.Start.Format(time.RFC3339),
			End:              e.End.Format(time.RFC3339),
			Status:           string(e.Status),
			Color:            calendar.StatusColor(e.Status),
			Title:            e.Title,
			ServiceName:      e.ServiceName,
			CustomerName:     e.CustomerName,
			ProfessionalName: e.ProfessionalName,
			ProfessionalID:   e.ProfessionalID,
			ColumnIndex:      placed.ColumnIndex,
			TotalColumns:     placed.TotalColumns,
			Offset:           placed.Placement.Offset,
			Extent:           placed.Placement.Extent,
		}
	}
	return result
}

// FromNowState nil означает, что индикатор не отображается для этого дня или недели
func FromNowState(state *calendar.NowState) *NowResponse {
	if state == nil {
		return nil
	}
	return &NowResponse{Visible: state.Visible, Offset: state.Offset}
}
