package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	TravelService TravelServiceConfig `toml:"travel_service"`
	Search        SearchConfig        `toml:"search"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки кэша оценок поездки
type RedisConfig struct {
	Enabled          bool   `toml:"enabled"`
	Addr             string `toml:"addr"`
	Password         string `toml:"password"`
	DB               int    `toml:"db"`
	TravelTTLSeconds int    `toml:"travel_ttl_seconds"`
}

// TravelTTL время жизни закэшированной оценки
func (c RedisConfig) TravelTTL() time.Duration {
	return time.Duration(c.TravelTTLSeconds) * time.Second
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

// TravelServiceConfig настройки сервиса оценки времени в пути
// Пустой URL отключает интеграцию: для выездных услуг используется fallback оценка
type TravelServiceConfig struct {
	URL               string  `toml:"url"`
	Timeout           int     `toml:"timeout"` // секунды
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// SearchConfig настройки движка поиска слотов
type SearchConfig struct {
	Workers         int    `toml:"workers"` // 0 = GOMAXPROCS
	DefaultTimezone string `toml:"default_timezone"`
}

// Location таймзона по умолчанию для салонов без собственной
func (c SearchConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.DefaultTimezone)
}

// Load читает конфигурацию из TOML файла
// Незаданные значения берутся по умолчанию, после чего конфигурация валидируется
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8083,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:             "localhost:6379",
			TravelTTLSeconds: 1800,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "availability_service",
		},
		TravelService: TravelServiceConfig{
			Timeout:           5,
			RequestsPerSecond: 50,
			Burst:             10,
		},
		Search: SearchConfig{
			DefaultTimezone: "UTC",
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be between 1 and 65535, got %d", c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return errors.New("database.host, database.user and database.dbname are required")
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when redis is enabled")
	}
	if c.Redis.TravelTTLSeconds <= 0 {
		return fmt.Errorf("redis.travel_ttl_seconds must be positive, got %d", c.Redis.TravelTTLSeconds)
	}

	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logs.level must be one of debug|info|warn|error, got %q", c.Logs.Level)
	}

	if c.TravelService.URL != "" {
		if c.TravelService.Timeout <= 0 {
			return fmt.Errorf("travel_service.timeout must be positive, got %d", c.TravelService.Timeout)
		}
		if c.TravelService.RequestsPerSecond <= 0 || c.TravelService.Burst <= 0 {
			return errors.New("travel_service.requests_per_second and travel_service.burst must be positive")
		}
	}

	if c.Search.Workers < 0 {
		return fmt.Errorf("search.workers must not be negative, got %d", c.Search.Workers)
	}
	if _, err := c.Search.Location(); err != nil {
		return fmt.Errorf("search.default_timezone: %w", err)
	}

	return nil
}
