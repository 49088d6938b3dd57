package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // timezone из конфига не зависит от ОС

	"github.com/BurntSushi/toml"
	"github.com/jinzhu/copier"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
	"github.com/m04kA/SMC-SpaceBooking/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях в конфиге
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server           ServerConfig            `toml:"server"`
	Logs             LogsConfig              `toml:"logs"`
	Metrics          MetricsConfig           `toml:"metrics"`
	Booking          BookingConfig           `toml:"booking"`
	Catalog          []ResourceConfig        `toml:"catalog"`
	ExistingBookings []ExistingBookingConfig `toml:"existing_bookings"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	RateLimitRPS   float64 `toml:"rate_limit_rps"` // 0 = без ограничения
	RateLimitBurst int     `toml:"rate_limit_burst"`

	// TrustProxyHeaders брать IP клиента из X-Forwarded-For (только за доверенным прокси)
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig параметры сценария бронирования
type BookingConfig struct {
	DefaultUserName string `toml:"default_user_name"`
	MaxSessions     int    `toml:"max_sessions"`
	Timezone        string `toml:"timezone"`

	SessionIdleTimeout int `toml:"session_idle_timeout"` // секунды, 0 = сессии не истекают
}

// ResourceConfig запись каталога ресурсов
type ResourceConfig struct {
	ID           string `toml:"id"`
	Name         string `toml:"name"`
	Category     string `toml:"category"`
	SportType    string `toml:"sport_type"`
	ResourceType string `toml:"resource_type"`
}

// ExistingBookingConfig занятая ячейка сетки, day_index 0 = понедельник
type ExistingBookingConfig struct {
	DayIndex int    `toml:"day_index"`
	Time     string `toml:"time"`
	Occupant string `toml:"occupant"`
}

// EnvPrefix префикс переменных окружения, переопределяющих файл
const EnvPrefix = "SPACEBOOKING"

// envOverrides значения из окружения, пустые поля не применяются
type envOverrides struct {
	HTTPPort       int    `envconfig:"HTTP_PORT"`
	LogLevel       string `envconfig:"LOG_LEVEL"`
	LogFile        string `envconfig:"LOG_FILE"`
	MetricsEnabled *bool  `envconfig:"METRICS_ENABLED"`
	Timezone       string `envconfig:"TIMEZONE"`
	MaxSessions    *int   `envconfig:"MAX_SESSIONS"`
}

// Load читает конфиг из TOML файла, применяет переменные окружения SPACEBOOKING_*,
// проставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("%w: environment: %v", ErrInvalidConfig, err)
	}

	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
	if env.LogFile != "" {
		c.Logs.File = env.LogFile
	}
	if env.MetricsEnabled != nil {
		c.Metrics.Enabled = *env.MetricsEnabled
	}
	if env.Timezone != "" {
		c.Booking.Timezone = env.Timezone
	}
	if env.MaxSessions != nil {
		c.Booking.MaxSessions = *env.MaxSessions
	}
	return nil
}

// Parse как Load, но из строки
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения, используемые для пропущенных полей
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			RateLimitRPS:    20,
			RateLimitBurst:  40,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/app.log",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "smc-spacebooking",
		},
		Booking: BookingConfig{
			DefaultUserName: domain.DefaultUserName,
			MaxSessions:     1000,
			Timezone:        "Local",

			SessionIdleTimeout: 1800,
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	for name, v := range map[string]int{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.idle_timeout":     c.Server.IdleTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, name)
		}
	}
	if c.Server.RateLimitRPS < 0 || (c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst <= 0) {
		return fmt.Errorf("%w: server.rate_limit_burst must be positive when rate_limit_rps is set", ErrInvalidConfig)
	}
	if c.Booking.MaxSessions < 0 {
		return fmt.Errorf("%w: booking.max_sessions must not be negative", ErrInvalidConfig)
	}
	if c.Booking.SessionIdleTimeout < 0 {
		return fmt.Errorf("%w: booking.session_idle_timeout must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]struct{}, len(c.Catalog))
	for i, r := range c.Catalog {
		if r.ID == "" || r.Name == "" {
			return fmt.Errorf("%w: catalog[%d] requires id and name", ErrInvalidConfig, i)
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: catalog[%d] duplicate id %q", ErrInvalidConfig, i, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	for i, b := range c.ExistingBookings {
		if b.DayIndex < 0 || b.DayIndex >= domain.DaysInWeek {
			return fmt.Errorf("%w: existing_bookings[%d] day_index %d", ErrInvalidConfig, i, b.DayIndex)
		}
		if _, err := types.NewTimeStringFromString(b.Time); err != nil {
			return fmt.Errorf("%w: existing_bookings[%d] time: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// Resources каталог в доменных типах
func (c *Config) Resources() ([]domain.Resource, error) {
	out := make([]domain.Resource, 0, len(c.Catalog))
	if err := copier.Copy(&out, &c.Catalog); err != nil {
		return nil, fmt.Errorf("failed to map catalog: %w", err)
	}
	return out, nil
}

// Bookings занятые ячейки в доменных типах; вызывать после Validate
func (c *Config) Bookings() []domain.ExistingBooking {
	out := make([]domain.ExistingBooking, 0, len(c.ExistingBookings))
	for _, b := range c.ExistingBookings {
		out = append(out, domain.ExistingBooking{
			DayIndex: b.DayIndex,
			Time:     types.MustTimeString(b.Time),
			Occupant: b.Occupant,
		})
	}
	return out
}

// Location часовой пояс для расчета "сегодня"
func (c *Config) Location() (*time.Location, error) {
	if c.Booking.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Booking.Timezone)
}
