package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const (
	ICSContentType = "text/calendar; charset=utf-8"
	ICSExtension   = "ics"

	productID        = "-//SMC//CalendarService//RU"
	statusProp       = ics.ComponentProperty("X-SMC-STATUS")
	professionalProp = ics.ComponentProperty("X-SMC-PROFESSIONAL-ID")
)

// WriteICS сериализует события недели в iCalendar
// stamp используется как DTSTAMP всех событий
func WriteICS(w io.Writer, week *Week, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(fmt.Sprintf("Company %d: %s - %s", week.CompanyID,
		week.From().Format(domain.DateFormat), week.To().Format(domain.DateFormat)))

	for _, day := range week.Days {
		for _, placed := range day.Events {
			addEvent(cal, week.CompanyID, placed.Event, stamp)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("%w: ics: %v", ErrRender, err)
	}
	return nil
}

func addEvent(cal *ics.Calendar, companyID int64, event domain.CalendarEvent, stamp time.Time) {
	ev := cal.AddEvent(fmt.Sprintf("booking-%s@company-%d", event.ID, companyID))
	ev.SetDtStampTime(stamp)
	ev.SetStartAt(event.Start)
	ev.SetEndAt(event.End)
	ev.SetSummary(event.Title)
	ev.SetDescription(describe(event))
	ev.SetStatus(objectStatus(event.Status))
	ev.SetProperty(statusProp, string(event.Status))
	ev.SetProperty(professionalProp, fmt.Sprintf("%d", event.ProfessionalID))
}

func describe(event domain.CalendarEvent) string {
	var b strings.Builder
	b.WriteString("Клиент: ")
	b.WriteString(event.CustomerName)
	b.WriteString("\nСпециалист: ")
	b.WriteString(event.ProfessionalName)
	b.WriteString("\nУслуга: ")
	b.WriteString(event.ServiceName)
	return b.String()
}

// objectStatus переводит статус события в STATUS iCalendar
func objectStatus(status domain.EventStatus) ics.ObjectStatus {
	switch status {
	case domain.StatusConfirmed, domain.StatusCompleted:
		return ics.ObjectStatusConfirmed
	case domain.StatusCancelled:
		return ics.ObjectStatusCancelled
	}
	return ics.ObjectStatusTentative
}
