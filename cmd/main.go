package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers/delete_settings"
	exportWeekHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/export_week"
	getAvailableTimesHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_available_times"
	getDayViewHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_day_view"
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_settings"
	getWeekViewHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_week_view"
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers/health"
	streamNowHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/stream_now"
	"github.com/m04kA/SMC-CalendarService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	availabilityCache "github.com/m04kA/SMC-CalendarService/internal/infra/cache/availability"
	settingsRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/settings"
	availabilityClient "github.com/m04kA/SMC-CalendarService/internal/integrations/availabilityservice"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingapi"
	settingsService "github.com/m04kA/SMC-CalendarService/internal/service/settings"
	getAvailableTimesUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_times"
	getDayViewUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_view"
	getWeekViewUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_view"
	trackNowUC "github.com/m04kA/SMC-CalendarService/internal/usecase/track_now"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := defaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	// nil-коллектор безопасен: все методы записи метрик его проверяют
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	settingsRepository := settingsRepo.NewRepository(db, cfg.Database.Driver)
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := settingsRepository.Migrate(migrateCtx); err != nil {
		cancelMigrate()
		log.Fatal("Failed to migrate database: %v", err)
	}
	cancelMigrate()

	healthChecks := map[string]health.Checker{"database": db.PingContext}

	// Кэш доступного времени (опционально)
	var timesCache getAvailableTimesUC.AvailabilityCache
	if cfg.Redis.Enabled {
		cache := availabilityCache.NewCache(
			availabilityCache.NewRedisClient(availabilityCache.Options{
				Address:  cfg.Redis.Address,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			}),
			time.Duration(cfg.Redis.AvailabilityTTL)*time.Second,
		)
		defer cache.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cache.Ping(pingCtx); err != nil {
			log.Warn("Redis is unavailable, availability cache will degrade to misses: %v", err)
		}
		cancelPing()

		timesCache = cache
		healthChecks["redis"] = cache.Ping
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.AvailabilityTTL)
	}

	// Инициализируем интеграционных клиентов
	bookings := bookingClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	availability := availabilityClient.NewClient(
		cfg.AvailabilityService.URL,
		time.Duration(cfg.AvailabilityService.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Integration clients initialized (BookingAPI=%s timeout=%ds, AvailabilityService=%s timeout=%ds)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout, cfg.AvailabilityService.URL, cfg.AvailabilityService.Timeout)

	// Настройки календаря: branch > company > значения из конфигурации
	calendarDefaults, err := cfg.Calendar.Defaults()
	if err != nil {
		log.Fatal("Invalid calendar defaults: %v", err)
	}
	settingsSvc := settingsService.NewService(settingsRepository, domain.CalendarSettings{
		StartHour:     calendarDefaults.StartHour,
		EndHour:       calendarDefaults.EndHour,
		SlotInterval:  calendarDefaults.SlotInterval,
		DensityFactor: cfg.Calendar.DensityFactor,
		LayoutMode:    cfg.Calendar.Mode(),
	}, log)

	// Движок календаря
	weeks := calendar.NewWeekResolver(calendar.SystemClock{Location: location})
	grid := calendar.NewSlotGrid(cfg.Calendar.LabelLayout)

	// Инициализируем use cases
	getDayViewUseCase := getDayViewUC.NewUseCase(settingsSvc, bookings, grid, weeks, location, metricsCollector, log)
	getWeekViewUseCase := getWeekViewUC.NewUseCase(settingsSvc, bookings, grid, weeks, location, metricsCollector, log)
	trackNowUseCase := trackNowUC.NewUseCase(settingsSvc, weeks, cfg.Calendar.Tick(), metricsCollector, log)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		availability,
		timesCache,
		metricsCollector,
		&getAvailableTimesUC.RealTimeProvider{Location: location},
		log,
	)

	// Инициализируем handlers
	getDayView := getDayViewHandler.NewHandler(getDayViewUseCase, location, log)
	getWeekView := getWeekViewHandler.NewHandler(getWeekViewUseCase, location, log)
	exportWeek := exportWeekHandler.NewHandler(getWeekViewUseCase, location, log)
	streamNow := streamNowHandler.NewHandler(trackNowUseCase, location, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, location, log)
	getSettings := get_settings.NewHandler(settingsSvc, log)
	updateSettings := update_settings.NewHandler(settingsSvc, log)
	deleteSettings := delete_settings.NewHandler(settingsSvc, log)
	healthHandler := health.NewHandler(healthChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь компании ---
	api.HandleFunc("/companies/{companyId}/calendar/day", getDayView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/calendar/week", getWeekView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/calendar/week/export.{format}", exportWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/calendar/now", streamNow.Handle).Methods(http.MethodGet)

	// --- Настройки календаря ---
	api.HandleFunc("/companies/{companyId}/calendar/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/calendar/settings", updateSettings.Handle).Methods(http.MethodPut)
	api.HandleFunc("/companies/{companyId}/calendar/settings", deleteSettings.Handle).Methods(http.MethodDelete)

	// --- Публичный виджет ---
	widget := api.PathPrefix("/widget").Subrouter()
	if cfg.RateLimit.Enabled {
		// Ошибка уже исключена валидацией конфигурации
		proxies, _ := cfg.RateLimit.Proxies()
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RPS,
			cfg.RateLimit.Burst,
			middleware.WithTrustedProxies(proxies),
		)
		widget.Use(limiter.Middleware())
		log.Info("Widget rate limit enabled (rps=%.2f, burst=%d, trusted proxies=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, len(proxies))
	}
	widget.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Базовый контекст запросов отменяется при остановке, чтобы SSE потоки завершились
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancelBase()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
