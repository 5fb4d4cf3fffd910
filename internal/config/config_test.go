package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MemoryBackendDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", StorageMemory)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("SUPPLIER_SYNC_INTERVAL", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.App.Storage)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSOrigins)
	assert.Equal(t, 15*time.Minute, cfg.Supplier.SyncInterval)
	assert.Equal(t, 30*time.Minute, cfg.Schedule.SessionIdle)
	assert.Equal(t, 30*time.Second, cfg.App.SyncTimeout)
}

func TestLoad_PostgresRequiresPassword(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", StoragePostgres)
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", StorageMemory)
	t.Setenv("SYNC_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "SYNC_TIMEOUT")
}

func TestValidate_UnknownStorage(t *testing.T) {
	cfg := &Config{
		App:      AppConfig{Port: 8080, Storage: "sqlite"},
		SSE:      SSEConfig{BufferSize: 1},
		Schedule: ScheduleConfig{SessionIdle: time.Minute},
	}
	assert.Error(t, cfg.Validate())

	cfg.App.Storage = StorageMemory
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "db", SSLMode: "disable"}}
	assert.Equal(t, "postgres://u:p@h:5432/db?sslmode=disable", cfg.DatabaseURL())
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	cfg.App.LogLevel = ""
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
