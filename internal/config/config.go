package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Redis    RedisConfig
	SSE      SSEConfig
	Supplier SupplierConfig
	Schedule ScheduleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// InstanceID tags the change events this process publishes.
	InstanceID    string
	Storage       string
	CORSOrigins   []string
	SyncTimeout   time.Duration
	ShutdownGrace time.Duration
}

// RedisConfig configures the realtime change channel. An empty URL disables it.
type RedisConfig struct {
	URL     string
	Channel string
}

type SSEConfig struct {
	BufferSize int
}

// SupplierConfig configures the order history import. An empty URL disables it.
type SupplierConfig struct {
	Name         string
	HistoryURL   string
	Cookie       string
	SyncInterval time.Duration
	Timeout      time.Duration
}

type ScheduleConfig struct {
	SessionIdle time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "payroll_app"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	syncTimeout, err := getEnvDuration("SYNC_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	shutdownGrace, err := getEnvDuration("SHUTDOWN_GRACE", "10s")
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		InstanceID:    getEnv("INSTANCE_ID", hostname),
		Storage:       getEnv("STORAGE_BACKEND", StoragePostgres),
		CORSOrigins:   getEnvSlice("CORS_ALLOWED_ORIGINS"),
		SyncTimeout:   syncTimeout,
		ShutdownGrace: shutdownGrace,
	}
	if len(config.App.CORSOrigins) == 0 {
		config.App.CORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	// Realtime configuration
	config.Redis = RedisConfig{
		URL:     getEnv("REDIS_URL", ""),
		Channel: getEnv("REDIS_CHANNEL", "payroll-app:changes"),
	}

	sseBuffer, err := strconv.Atoi(getEnv("SSE_BUFFER_SIZE", "32"))
	if err != nil {
		return nil, fmt.Errorf("invalid SSE_BUFFER_SIZE: %w", err)
	}
	config.SSE = SSEConfig{BufferSize: sseBuffer}

	// Supplier configuration
	syncInterval, err := getEnvDuration("SUPPLIER_SYNC_INTERVAL", "1h")
	if err != nil {
		return nil, err
	}
	supplierTimeout, err := getEnvDuration("SUPPLIER_TIMEOUT", "30s")
	if err != nil {
		return nil, err
	}
	config.Supplier = SupplierConfig{
		Name:         getEnv("SUPPLIER_NAME", "Wujia"),
		HistoryURL:   getEnv("SUPPLIER_HISTORY_URL", ""),
		Cookie:       getEnv("SUPPLIER_COOKIE", ""),
		SyncInterval: syncInterval,
		Timeout:      supplierTimeout,
	}

	// Schedule board sessions
	sessionIdle, err := getEnvDuration("SESSION_IDLE_TIMEOUT", "30m")
	if err != nil {
		return nil, err
	}
	config.Schedule = ScheduleConfig{SessionIdle: sessionIdle}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.App.Storage {
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q", StoragePostgres, StorageMemory)
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.SSE.BufferSize <= 0 {
		return fmt.Errorf("SSE_BUFFER_SIZE must be positive")
	}
	if c.Supplier.HistoryURL != "" && c.Supplier.SyncInterval <= 0 {
		return fmt.Errorf("SUPPLIER_SYNC_INTERVAL must be positive")
	}
	if c.Schedule.SessionIdle <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
