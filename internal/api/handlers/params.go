package handlers

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ParseOptionalID парсит необязательный положительный ID из query параметра
func ParseOptionalID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseOptionalFloat парсит необязательное число из query параметра
func ParseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParseDate парсит дату YYYY-MM-DD в часовом поясе календаря
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(domain.DateFormat, raw, loc)
}
