package config

import (
	"os"
	"strconv"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/events"
	"github.com/aixxiteru/peta-jabatan/internal/shared/connection"
)

const (
	DefaultSheetURL    = "https://docs.google.com/spreadsheets/d/1GfE_sn4ATSf0r0t6dn1WymuScWF-HzIxLYdmnGJx8FA/edit?gid=1142006045#gid=1142006045"
	DefaultEmployeeGID = "208853000"
)

type Config struct {
	Port string

	// memory | redis | postgres
	StoreDriver string
	// optional for memory/postgres; enables parse caches and idempotency
	RedisAddr string
	Postgres    connection.PostgresConfig

	KafkaBroker string
	KafkaTopic  string

	SettingsSecret     string
	DefaultSheetURL    string
	DefaultEmployeeGID string

	SheetFetchTimeout time.Duration
	SyncInterval      time.Duration
	SyncRatePerMinute int
	ParseCacheTTL     time.Duration
}

func Load() Config {
	return Config{
		Port:        GetEnv("PORT", "3000"),
		StoreDriver: GetEnv("STORE_DRIVER", "memory"),
		RedisAddr:   GetEnv("REDIS_ADDR", ""),
		Postgres: connection.PostgresConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			User:     GetEnv("DB_USER", "postgres"),
			Password: GetEnv("DB_PASSWORD", ""),
			Name:     GetEnv("DB_NAME", "peta_jabatan"),
			Port:     GetEnv("DB_PORT", "5432"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
		},
		KafkaBroker:        GetEnv("KAFKA_BROKER", ""),
		KafkaTopic:         GetEnv("KAFKA_TOPIC", events.SheetSyncTopic),
		SettingsSecret:     GetEnv("SETTINGS_SECRET", "alambskji"),
		DefaultSheetURL:    GetEnv("DEFAULT_SHEET_URL", DefaultSheetURL),
		DefaultEmployeeGID: GetEnv("DEFAULT_EMPLOYEE_GID", DefaultEmployeeGID),
		SheetFetchTimeout:  GetEnvAsDuration("SHEET_FETCH_TIMEOUT", 30*time.Second),
		SyncInterval:       GetEnvAsDuration("SYNC_INTERVAL", 0),
		SyncRatePerMinute:  GetEnvAsInt("SYNC_RATE_LIMIT", 6),
		ParseCacheTTL:      GetEnvAsDuration("PARSE_CACHE_TTL", 30*time.Minute),
	}
}

// GetEnv returns the environment variable or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsDuration accepts Go durations ("90s", "5m").
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return fallback
}
