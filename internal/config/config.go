package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DB     DBConfig
	JWT    JWTConfig
	Server ServerConfig
	Audit  AuditConfig
	Log    LogConfig
}

// DBConfig selects the relational store. The sqlite driver runs fully in
// memory by default; postgres uses the Host..SSLMode fields.
type DBConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

type ServerConfig struct {
	Port            string
	FrontendURL     string
	ShutdownTimeout time.Duration
}

type AuditConfig struct {
	QueueSize int
}

// LogConfig.Level is one of debug, info, warn or error.
type LogConfig struct {
	Level string
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func Load() *Config {
	return &Config{
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", DriverSQLite),
			DSN:      getEnv("DB_DSN", ":memory:"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "meetup"),
			Password: getEnv("DB_PASSWORD", "meetup_secret"),
			Name:     getEnv("DB_NAME", "meetup"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "change-me-in-production"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Audit: AuditConfig{
			QueueSize: getEnvAsInt("AUDIT_QUEUE_SIZE", 1000),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
