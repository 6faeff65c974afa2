package bookingapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учитывает исходящие запросы
type MetricsRecorder interface {
	ObserveIntegration(service string, status int, duration time.Duration)
}
