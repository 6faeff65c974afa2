package types

import (
	"fmt"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

// TimeString represents a time of day in "HH:MM" format
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromClock создает TimeString из часов и минут
func NewTimeStringFromClock(hour, minute int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
}

// NewTimeStringFromString парсит строку формата "HH:MM" или "HH:MM:SS"
// Секунды отбрасываются
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает час (0-23), -1 для некорректного значения
func (t TimeString) Hour() int {
	parsed, err := parseClock(string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()
}

// Minutes возвращает количество минут от полуночи, -1 для некорректного значения
func (t TimeString) Minutes() int {
	parsed, err := parseClock(string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func parseClock(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(timeLayoutSeconds, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
	}
	return t, nil
}
