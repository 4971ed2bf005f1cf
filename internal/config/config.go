package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/salon-booking/pkg/types"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrLoadEnv       = errors.New("config: failed to load .env file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBPassword    = "SALON_DB_PASSWORD"
	EnvAdminPassword = "SALON_ADMIN_PASSWORD"
	EnvRedisAddr     = "SALON_REDIS_ADDR"
	EnvHTTPPort      = "SALON_HTTP_PORT"

	envFile = ".env"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Booking  BookingConfig  `toml:"booking"`
	Redis    RedisConfig    `toml:"redis"`
	Admin    AdminConfig    `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

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
	QueryTimeoutMs  int    `toml:"query_timeout_ms"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// URL строка подключения в формате postgres:// для golang-migrate
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// QueryTimeout ограничение на одно обращение к хранилищу
func (c DatabaseConfig) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutMs) * time.Millisecond
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

type ScheduleConfig struct {
	WeekdayOpensAt string `toml:"weekday_opens_at"` // "14:00"
	Location       string `toml:"location"`         // IANA, например "America/Sao_Paulo"
}

// Loc часовой пояс салона; Validate гарантирует, что он загружается
func (c ScheduleConfig) Loc() *time.Location {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

type BookingConfig struct {
	StrictServices        bool `toml:"strict_services"`
	IdempotencyTTLSeconds int  `toml:"idempotency_ttl_seconds"`
}

func (c BookingConfig) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempotencyTTLSeconds) * time.Second
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type AdminConfig struct {
	Password string `toml:"password"`
}

// Load читает TOML файл, затем .env (если есть) и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// 1. Файл конфигурации
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// 2. .env дополняет окружение, уже выставленные переменные не трогает
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	// 3. Переопределения из окружения
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// 4. Значения по умолчанию и проверка
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvAdminPassword); ok {
		c.Admin.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisAddr); ok {
		c.Redis.Addr = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 20)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	setDefault(&c.Database.QueryTimeoutMs, 3000)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon-booking"
	}

	if c.Schedule.WeekdayOpensAt == "" {
		c.Schedule.WeekdayOpensAt = "14:00"
	}
	if c.Schedule.Location == "" {
		c.Schedule.Location = "Local"
	}

	setDefault(&c.Booking.IdempotencyTTLSeconds, 86400)

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
}

// Validate проверяет значения после применения умолчаний
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if _, err := types.NewTimeStringFromString(c.Schedule.WeekdayOpensAt); err != nil {
		return fmt.Errorf("%w: schedule.weekday_opens_at=%q: %v", ErrInvalidConfig, c.Schedule.WeekdayOpensAt, err)
	}
	if _, err := time.LoadLocation(c.Schedule.Location); err != nil {
		return fmt.Errorf("%w: schedule.location=%q: %v", ErrInvalidConfig, c.Schedule.Location, err)
	}
	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
