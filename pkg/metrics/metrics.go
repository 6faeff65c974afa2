package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics содержит все метрики сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики календаря
	LayoutEvents     *prometheus.HistogramVec
	LayoutColumns    *prometheus.HistogramVec
	ActiveNowStreams prometheus.Gauge

	// Метрики кэша и интеграций
	CacheRequestsTotal       *prometheus.CounterVec
	IntegrationRequestsTotal *prometheus.CounterVec
	IntegrationDuration      *prometheus.HistogramVec
}

// Результаты обращений к кэшу
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// New создает и регистрирует метрики.
// Если reg == nil, используется prometheus.DefaultRegisterer.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		LayoutEvents: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "calendar_layout_events",
				Help:        "Number of events laid out per view.",
				ConstLabels: constLabels,
				Buckets:     []float64{0, 1, 5, 10, 25, 50, 100, 250},
			},
			[]string{"view", "mode"},
		),
		LayoutColumns: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "calendar_layout_max_columns",
				Help:        "Widest overlap group per view.",
				ConstLabels: constLabels,
				Buckets:     []float64{1, 2, 3, 4, 6, 8, 12},
			},
			[]string{"view", "mode"},
		),
		ActiveNowStreams: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "calendar_now_streams_active",
				Help:        "Open live-time streams.",
				ConstLabels: constLabels,
			},
		),
		CacheRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "cache_requests_total",
				Help:        "Cache lookups by result.",
				ConstLabels: constLabels,
			},
			[]string{"cache", "result"},
		),
		IntegrationRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "integration_requests_total",
				Help:        "Outgoing requests to external services.",
				ConstLabels: constLabels,
			},
			[]string{"service", "status"},
		),
		IntegrationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "integration_request_duration_seconds",
				Help:        "Outgoing request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"service"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LayoutEvents,
		m.LayoutColumns,
		m.ActiveNowStreams,
		m.CacheRequestsTotal,
		m.IntegrationRequestsTotal,
		m.IntegrationDuration,
	)

	return m
}

// ObserveLayout записывает размер раскладки.
// Безопасен для nil (метрики выключены).
func (m *Metrics) ObserveLayout(view, mode string, events, maxColumns int) {
	if m == nil {
		return
	}
	m.LayoutEvents.WithLabelValues(view, mode).Observe(float64(events))
	m.LayoutColumns.WithLabelValues(view, mode).Observe(float64(maxColumns))
}

// CacheResult учитывает обращение к кэшу
func (m *Metrics) CacheResult(cache, result string) {
	if m == nil {
		return
	}
	m.CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}

// StreamOpened учитывает открытие live-потока
func (m *Metrics) StreamOpened() {
	if m == nil {
		return
	}
	m.ActiveNowStreams.Inc()
}

// StreamClosed учитывает закрытие live-потока
func (m *Metrics) StreamClosed() {
	if m == nil {
		return
	}
	m.ActiveNowStreams.Dec()
}

// ObserveIntegration учитывает исходящий запрос, status 0 означает сетевую ошибку
func (m *Metrics) ObserveIntegration(service string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.IntegrationRequestsTotal.WithLabelValues(service, strconv.Itoa(status)).Inc()
	m.IntegrationDuration.WithLabelValues(service).Observe(duration.Seconds())
}
