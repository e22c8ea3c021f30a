package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/unilab/labdash/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	LabAPI      LabAPIConfig
	Log         LogConfig
	Session     SessionConfig
	Preferences PreferencesConfig
	Database    database.PostgresConfig
	Redis       database.RedisConfig
	Monitor     MonitorConfig
	Email       EmailConfig
	FileStorage FileStorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// LabAPIConfig points at the hosted laboratory REST API
type LabAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LogConfig selects the slog handler
type LogConfig struct {
	Format string
	Level  string
}

// SessionConfig holds the operator login and token settings
type SessionConfig struct {
	AdminUser         string
	AdminPasswordHash string
	Secret            string
	Expiry            time.Duration
}

// PreferencesConfig selects where dashboard preferences are kept: memory, redis or postgres
type PreferencesConfig struct {
	Backend        string
	MigrationsPath string
}

// MonitorConfig holds the polling intervals of the change detectors
type MonitorConfig struct {
	RequestsInterval time.Duration
	SuppliesInterval time.Duration
	AgendaRefresh    time.Duration
	FetchTimeout     time.Duration
	ToastDuration    time.Duration
}

// EmailConfig holds outbound e-mail settings
type EmailConfig struct {
	SendGridKey string
	FromName    string
	FromAddress string
}

// FileStorageConfig holds report archive storage configuration
type FileStorageConfig struct {
	UseS3            bool
	S3Region         string
	S3Endpoint       string
	S3PublicEndpoint string
	S3AccessKey      string
	S3SecretKey      string
	S3BucketName     string
	S3UseSSL         bool
	LocalPath        string
	LocalBaseURL     string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		LabAPI: LabAPIConfig{
			BaseURL: getEnv("LAB_API_URL", "https://universidad-la9h.onrender.com"),
			Timeout: parseDuration(getEnv("LAB_API_TIMEOUT", "15s"), 15*time.Second),
		},
		Log: LogConfig{
			Format: getEnv("LOG_FORMAT", "json"),
			Level:  getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			AdminUser:         getEnv("ADMIN_USER", "encargado"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Secret:            getEnv("JWT_SECRET", "default-dev-secret"),
			Expiry:            parseDuration(getEnv("JWT_EXPIRATION", "12h"), 12*time.Hour),
		},
		Preferences: PreferencesConfig{
			Backend:        getEnv("PREFERENCES_BACKEND", "memory"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "labdash"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Monitor: MonitorConfig{
			RequestsInterval: parseDuration(getEnv("MONITOR_REQUESTS_INTERVAL", "10s"), 10*time.Second),
			SuppliesInterval: parseDuration(getEnv("MONITOR_SUPPLIES_INTERVAL", "1m"), time.Minute),
			AgendaRefresh:    parseDuration(getEnv("AGENDA_REFRESH_INTERVAL", "5m"), 5*time.Minute),
			FetchTimeout:     parseDuration(getEnv("MONITOR_FETCH_TIMEOUT", "8s"), 8*time.Second),
			ToastDuration:    parseDuration(getEnv("TOAST_DURATION", "5s"), 5*time.Second),
		},
		Email: EmailConfig{
			SendGridKey: getEnv("SENDGRID_API_KEY", ""),
			FromName:    getEnv("EMAIL_FROM_NAME", "Laboratorios"),
			FromAddress: getEnv("EMAIL_FROM_ADDRESS", "no-reply@localhost"),
		},
		FileStorage: FileStorageConfig{
			UseS3:            parseBool(getEnv("USE_S3", "false"), false),
			S3Region:         getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:       getEnv("S3_ENDPOINT", ""),
			S3PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", getEnv("S3_ENDPOINT", "")),
			S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
			S3BucketName:     getEnv("S3_BUCKET", ""),
			S3UseSSL:         parseBool(getEnv("S3_USE_SSL", "true"), true),
			LocalPath:        getEnv("LOCAL_STORAGE_PATH", "./exports"),
			LocalBaseURL:     getEnv("LOCAL_STORAGE_URL", "http://localhost:8080/exports"),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
		return duration
	}
	return defaultValue
}

func parseBool(value string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return defaultValue
}

func parseInt(value string, defaultValue int) int {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return defaultValue
}
