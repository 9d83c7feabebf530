package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	ApplicationName    string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
// Attachments are disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UseSSL           bool
	PresignExpirySec int
}

// Enabled reports whether object storage has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// NATSConfig holds the domain event publisher settings.
// Events are dropped silently when URL is empty.
type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

// LogConfig controls the process-wide logger.
type LogConfig struct {
	Level  string
	Format string
}

// SweepConfig controls the background lease/payment sweep.
type SweepConfig struct {
	Enabled    bool
	Spec       string
	TimeoutSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	Timezone       string
	MetricsEnabled bool
	Log            LogConfig
	Database       DatabaseConfig
	MinIO          MinIOConfig
	NATS           NATSConfig
	Sweep          SweepConfig
}

// Location resolves the configured time zone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			ApplicationName:    getEnv("DB_APPLICATION_NAME", "propdesk"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:         getEnv("MINIO_ENDPOINT", ""),
			AccessKey:        getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:        getEnv("MINIO_SECRET_KEY", ""),
			Bucket:           getEnv("MINIO_BUCKET", ""),
			UseSSL:           getEnvBool("MINIO_USE_SSL", false),
			PresignExpirySec: getEnvInt("MINIO_PRESIGN_EXPIRY_SEC", 900),
		},
		NATS: NATSConfig{
			URL:           getEnv("NATS_URL", ""),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "propdesk"),
		},
		Sweep: SweepConfig{
			Enabled:    getEnvBool("SWEEP_ENABLED", true),
			Spec:       getEnv("SWEEP_CRON", "@hourly"),
			TimeoutSec: getEnvInt("SWEEP_TIMEOUT_SEC", 60),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
