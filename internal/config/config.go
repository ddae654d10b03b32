package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Timeline TimelineConfig `toml:"timeline"`
	Sessions SessionsConfig `toml:"sessions"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TimelineConfig значения по умолчанию для расчета слотов и линейки времени
type TimelineConfig struct {
	GridMinutes            int     `toml:"grid_minutes"`
	PixelsPerMinute        float64 `toml:"pixels_per_minute"`
	DefaultDurationMinutes int     `toml:"default_duration_minutes"`
}

// SessionsConfig время жизни сессий выбора слота (секунды)
type SessionsConfig struct {
	TTL             int `toml:"ttl_seconds"`
	CleanupInterval int `toml:"cleanup_interval_seconds"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-schedule-timeline"
	}

	if c.Timeline.GridMinutes == 0 {
		c.Timeline.GridMinutes = 30
	}
	if c.Timeline.PixelsPerMinute == 0 {
		c.Timeline.PixelsPerMinute = 2
	}
	if c.Timeline.DefaultDurationMinutes == 0 {
		c.Timeline.DefaultDurationMinutes = 60
	}

	if c.Sessions.TTL == 0 {
		c.Sessions.TTL = 900
	}
	if c.Sessions.CleanupInterval == 0 {
		c.Sessions.CleanupInterval = 60
	}
}

// Validate проверяет значения после подстановки дефолтов
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in [1, 65535]", ErrInvalidConfig)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Timeline.GridMinutes < 0 {
		return fmt.Errorf("%w: timeline.grid_minutes must be positive", ErrInvalidConfig)
	}
	if c.Timeline.PixelsPerMinute < 0 {
		return fmt.Errorf("%w: timeline.pixels_per_minute must be positive", ErrInvalidConfig)
	}
	if c.Timeline.DefaultDurationMinutes < 0 {
		return fmt.Errorf("%w: timeline.default_duration_minutes must be positive", ErrInvalidConfig)
	}
	if c.Sessions.TTL < 0 || c.Sessions.CleanupInterval < 0 {
		return fmt.Errorf("%w: sessions ttl and cleanup interval must be positive", ErrInvalidConfig)
	}
	return nil
}
