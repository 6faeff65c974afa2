package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Config содержит всю конфигурацию сервиса
type Config struct {
	Server              ServerConfig      `toml:"server" yaml:"server"`
	Logs                LogsConfig        `toml:"logs" yaml:"logs"`
	Database            DatabaseConfig    `toml:"database" yaml:"database"`
	Redis               RedisConfig       `toml:"redis" yaml:"redis"`
	BookingAPI          IntegrationConfig `toml:"booking_api" yaml:"booking_api"`
	AvailabilityService IntegrationConfig `toml:"availability_service" yaml:"availability_service"`
	Calendar            CalendarConfig    `toml:"calendar" yaml:"calendar"`
	Metrics             MetricsConfig     `toml:"metrics" yaml:"metrics"`
	RateLimit           RateLimitConfig   `toml:"rate_limit" yaml:"rate_limit"`
}

// ServerConfig - настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" yaml:"http_port"`
	ReadTimeout     int `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// LogsConfig - настройки логирования
type LogsConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// DatabaseConfig - настройки БД с настройками календаря компаний
type DatabaseConfig struct {
	Driver          string `toml:"driver" yaml:"driver"`
	Host            string `toml:"host" yaml:"host"`
	Port            int    `toml:"port" yaml:"port"`
	User            string `toml:"user" yaml:"user"`
	Password        string `toml:"password" yaml:"password"`
	DBName          string `toml:"dbname" yaml:"dbname"`
	SSLMode         string `toml:"sslmode" yaml:"sslmode"`
	Path            string `toml:"path" yaml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

// RedisConfig - настройки кэша доступного времени
type RedisConfig struct {
	Enabled         bool   `toml:"enabled" yaml:"enabled"`
	Address         string `toml:"address" yaml:"address"`
	Password        string `toml:"password" yaml:"password"`
	DB              int    `toml:"db" yaml:"db"`
	AvailabilityTTL int    `toml:"availability_ttl" yaml:"availability_ttl"` // секунды
}

// IntegrationConfig - настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url" yaml:"url"`
	Timeout int    `toml:"timeout" yaml:"timeout"` // секунды
}

// CalendarConfig - значения календаря по умолчанию (нижний уровень иерархии настроек)
type CalendarConfig struct {
	StartHour     int     `toml:"start_hour" yaml:"start_hour"`
	EndHour       int     `toml:"end_hour" yaml:"end_hour"`
	SlotInterval  int     `toml:"slot_interval" yaml:"slot_interval"`
	DensityFactor float64 `toml:"density_factor" yaml:"density_factor"`
	LayoutMode    string  `toml:"layout_mode" yaml:"layout_mode"`
	TickInterval  int     `toml:"tick_interval" yaml:"tick_interval"` // секунды
	Timezone      string  `toml:"timezone" yaml:"timezone"`
	LabelLayout   string  `toml:"label_layout" yaml:"label_layout"`
}

// MetricsConfig - настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
	Path        string `toml:"path" yaml:"path"`
	ServiceName string `toml:"service_name" yaml:"service_name"`
}

// RateLimitConfig - ограничение частоты запросов к публичному виджету
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	RPS     float64 `toml:"rps" yaml:"rps"`
	Burst   int     `toml:"burst" yaml:"burst"`

	// Адреса или подсети прокси, которым разрешено передавать X-Forwarded-For
	TrustedProxies []string `toml:"trusted_proxies" yaml:"trusted_proxies"`
}

// Load загружает конфигурацию из файла.
// Формат определяется по расширению: .yaml/.yml - YAML, остальное - TOML.
func Load(path string) (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse разбирает конфигурацию из байтов, подставляя переменные окружения ${VAR}
func Parse(data []byte, ext string) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	default:
		if _, err := toml.Decode(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse toml config: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	// WriteTimeout 0 оставляем как есть: SSE поток не должен обрываться по таймауту
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.Format == "" {
		c.Logs.Format = "json"
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.AvailabilityTTL == 0 {
		c.Redis.AvailabilityTTL = 60
	}

	if c.BookingAPI.Timeout == 0 {
		c.BookingAPI.Timeout = 5
	}
	if c.AvailabilityService.Timeout == 0 {
		c.AvailabilityService.Timeout = 5
	}

	if c.Calendar.StartHour == 0 && c.Calendar.EndHour == 0 {
		c.Calendar.StartHour = domain.DefaultStartHour
		c.Calendar.EndHour = domain.DefaultEndHour
	}
	if c.Calendar.SlotInterval == 0 {
		c.Calendar.SlotInterval = domain.DefaultSlotInterval
	}
	if c.Calendar.DensityFactor == 0 {
		c.Calendar.DensityFactor = domain.DefaultDensityFactor
	}
	if c.Calendar.LayoutMode == "" {
		c.Calendar.LayoutMode = string(domain.LayoutPerEvent)
	}
	if c.Calendar.TickInterval == 0 {
		c.Calendar.TickInterval = int(domain.DefaultTickInterval / time.Second)
	}
	if c.Calendar.Timezone == "" {
		c.Calendar.Timezone = "UTC"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc_calendarservice"
	}

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("database.host and database.dbname are required for postgres")
		}
	case "sqlite3":
		if c.Database.Path == "" {
			return errors.New("database.path is required for sqlite3")
		}
	default:
		return fmt.Errorf("unsupported database.driver: %s", c.Database.Driver)
	}

	if c.Redis.Enabled && c.Redis.Address == "" {
		return errors.New("redis.address is required when redis is enabled")
	}

	if c.BookingAPI.URL == "" {
		return errors.New("booking_api.url is required")
	}
	if c.AvailabilityService.URL == "" {
		return errors.New("availability_service.url is required")
	}

	if _, err := c.Calendar.Defaults(); err != nil {
		return err
	}
	if c.Calendar.DensityFactor <= 0 || c.Calendar.DensityFactor > domain.MaxDensityFactor {
		return fmt.Errorf("calendar.density_factor must be in (0,%v]", domain.MaxDensityFactor)
	}
	if _, ok := domain.ParseLayoutMode(c.Calendar.LayoutMode); !ok {
		return fmt.Errorf("unsupported calendar.layout_mode: %s", c.Calendar.LayoutMode)
	}
	if c.Calendar.TickInterval < 1 {
		return errors.New("calendar.tick_interval must be positive")
	}
	if _, err := c.Calendar.Location(); err != nil {
		return err
	}

	if c.RateLimit.Enabled && c.RateLimit.RPS < 0 {
		return errors.New("rate_limit.rps must not be negative")
	}
	if _, err := c.RateLimit.Proxies(); err != nil {
		return err
	}

	return nil
}

// DSN возвращает строку подключения к БД для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite3" {
		return d.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Defaults возвращает настройки календаря по умолчанию
func (c CalendarConfig) Defaults() (domain.CalendarConfig, error) {
	return domain.NewCalendarConfig(c.StartHour, c.EndHour, c.SlotInterval)
}

// Mode возвращает режим раскладки пересекающихся событий
func (c CalendarConfig) Mode() domain.LayoutMode {
	mode, ok := domain.ParseLayoutMode(c.LayoutMode)
	if !ok {
		return domain.LayoutPerEvent
	}
	return mode
}

// Tick возвращает период обновления индикатора текущего времени
func (c CalendarConfig) Tick() time.Duration {
	return time.Duration(c.TickInterval) * time.Second
}

// Location возвращает часовой пояс отображения
func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Proxies разбирает trusted_proxies: одиночный адрес превращается в подсеть из одного хоста
func (c RateLimitConfig) Proxies() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if prefix, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid rate_limit.trusted_proxies entry %q", raw)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}
