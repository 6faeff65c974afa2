package config

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const minimalTOML = `
[database]
host = "localhost"
dbname = "calendar"

[booking_api]
url = "http://booking:8080"

[availability_service]
url = "http://booking:8080"
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalTOML), ".toml")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, domain.DefaultStartHour, cfg.Calendar.StartHour)
	assert.Equal(t, domain.DefaultEndHour, cfg.Calendar.EndHour)
	assert.Equal(t, domain.DefaultSlotInterval, cfg.Calendar.SlotInterval)
	assert.InDelta(t, domain.DefaultDensityFactor, cfg.Calendar.DensityFactor, 1e-9)
	assert.Equal(t, domain.LayoutPerEvent, cfg.Calendar.Mode())
	assert.Equal(t, time.Minute, cfg.Calendar.Tick())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	defaults, err := cfg.Calendar.Defaults()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCalendarConfig(), defaults)
}

func TestParse_TOML(t *testing.T) {
	data := `
[server]
http_port = 9090

[database]
driver = "sqlite3"
path = "/tmp/calendar.db"

[redis]
enabled = true
address = "localhost:6379"
availability_ttl = 30

[booking_api]
url = "http://booking:8080"
timeout = 3

[availability_service]
url = "http://booking:8080"

[calendar]
start_hour = 7
end_hour = 22
slot_interval = 15
density_factor = 2.0
layout_mode = "clustered"
timezone = "Europe/Moscow"
`
	cfg, err := Parse([]byte(data), ".toml")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "/tmp/calendar.db", cfg.Database.DSN())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30, cfg.Redis.AvailabilityTTL)
	assert.Equal(t, 3, cfg.BookingAPI.Timeout)
	assert.Equal(t, domain.LayoutClustered, cfg.Calendar.Mode())

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestParse_YAML(t *testing.T) {
	data := `
database:
  host: db
  dbname: calendar
booking_api:
  url: http://booking:8080
availability_service:
  url: http://booking:8080
calendar:
  start_hour: 9
  end_hour: 18
  slot_interval: 20
`
	cfg, err := Parse([]byte(data), ".yaml")
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Calendar.StartHour)
	assert.Equal(t, 20, cfg.Calendar.SlotInterval)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("CALENDAR_DB_PASSWORD", "secret")

	data := minimalTOML + `
[redis]
password = "${CALENDAR_DB_PASSWORD}"
`
	cfg, err := Parse([]byte(data), ".toml")
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Redis.Password)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		extra string
	}{
		{name: "end before start", extra: "[calendar]\nstart_hour = 10\nend_hour = 9\n"},
		{name: "hour out of range", extra: "[calendar]\nstart_hour = 8\nend_hour = 24\n"},
		{name: "negative interval", extra: "[calendar]\nslot_interval = -5\n"},
		{name: "unknown layout", extra: "[calendar]\nlayout_mode = \"grid\"\n"},
		{name: "bad timezone", extra: "[calendar]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "density too large", extra: "[calendar]\ndensity_factor = 1000.0\n"},
		{name: "redis without address", extra: "[redis]\nenabled = true\n"},
		{name: "port out of range", extra: "[server]\nhttp_port = 70000\n"},
		{name: "bad trusted proxy", extra: "[rate_limit]\ntrusted_proxies = [\"proxy.local\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(minimalTOML+tt.extra), ".toml")
			assert.Error(t, err)
		})
	}

	t.Run("missing booking api", func(t *testing.T) {
		_, err := Parse([]byte("[database]\nhost = \"h\"\ndbname = \"d\"\n"), ".toml")
		assert.Error(t, err)
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := Parse([]byte("[database"), ".toml")
		assert.Error(t, err)
	})
}

func TestRateLimitConfig_Proxies(t *testing.T) {
	cfg, err := Parse([]byte(minimalTOML+"[rate_limit]\ntrusted_proxies = [\"10.1.2.3/8\", \"192.168.0.5\", \"::1\"]\n"), ".toml")
	require.NoError(t, err)

	proxies, err := cfg.RateLimit.Proxies()
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.0.5/32"),
		netip.MustParsePrefix("::1/128"),
	}, proxies)

	empty, err := RateLimitConfig{}.Proxies()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalTOML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Database.Host)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
