package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if val, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, val) })
	}
	os.Unsetenv(key)
}

func TestLoad(t *testing.T) {
	t.Run("returns config with defaults when no env vars set", func(t *testing.T) {
		for _, key := range []string{"DB_DRIVER", "DB_DSN", "SERVER_PORT", "JWT_EXPIRATION_HOURS", "AUDIT_QUEUE_SIZE", "SHUTDOWN_TIMEOUT", "LOG_LEVEL"} {
			unsetEnv(t, key)
		}

		cfg := Load()
		if cfg == nil {
			t.Fatal("expected non-nil config")
		}
		if cfg.DB.Driver != DriverSQLite {
			t.Errorf("expected DB.Driver %q, got %s", DriverSQLite, cfg.DB.Driver)
		}
		if cfg.DB.DSN != ":memory:" {
			t.Errorf("expected DB.DSN ':memory:', got %s", cfg.DB.DSN)
		}
		if cfg.Server.Port != "8080" {
			t.Errorf("expected Server.Port '8080', got %s", cfg.Server.Port)
		}
		if cfg.JWT.ExpirationHours != 24 {
			t.Errorf("expected JWT.ExpirationHours 24, got %d", cfg.JWT.ExpirationHours)
		}
		if cfg.Audit.QueueSize != 1000 {
			t.Errorf("expected Audit.QueueSize 1000, got %d", cfg.Audit.QueueSize)
		}
		if cfg.Server.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected Server.ShutdownTimeout 10s, got %v", cfg.Server.ShutdownTimeout)
		}
		if cfg.Log.Level != "info" {
			t.Errorf("expected Log.Level 'info', got %s", cfg.Log.Level)
		}
	})

	t.Run("reads environment variables", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("JWT_SECRET", "my-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "48")
		t.Setenv("FRONTEND_URL", "https://meetup.example.com")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("LOG_LEVEL", "warn")

		cfg := Load()

		if cfg.DB.Driver != DriverPostgres {
			t.Errorf("expected DB.Driver 'postgres', got %s", cfg.DB.Driver)
		}
		if cfg.DB.Host != "db.internal" {
			t.Errorf("expected DB.Host 'db.internal', got %s", cfg.DB.Host)
		}
		if cfg.DB.Port != "5433" {
			t.Errorf("expected DB.Port '5433', got %s", cfg.DB.Port)
		}
		if cfg.Server.Port != "9090" {
			t.Errorf("expected Server.Port '9090', got %s", cfg.Server.Port)
		}
		if cfg.JWT.Secret != "my-secret" {
			t.Errorf("expected JWT.Secret 'my-secret', got %s", cfg.JWT.Secret)
		}
		if cfg.JWT.ExpirationHours != 48 {
			t.Errorf("expected JWT.ExpirationHours 48, got %d", cfg.JWT.ExpirationHours)
		}
		if cfg.Server.FrontendURL != "https://meetup.example.com" {
			t.Errorf("expected Server.FrontendURL override, got %s", cfg.Server.FrontendURL)
		}
		if cfg.Server.ShutdownTimeout != 3*time.Second {
			t.Errorf("expected Server.ShutdownTimeout 3s, got %v", cfg.Server.ShutdownTimeout)
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("expected Log.Level 'warn', got %s", cfg.Log.Level)
		}
	})

	t.Run("falls back on unparsable numbers and durations", func(t *testing.T) {
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")
		t.Setenv("AUDIT_QUEUE_SIZE", "-")
		t.Setenv("SHUTDOWN_TIMEOUT", "ten seconds")

		cfg := Load()

		if cfg.JWT.ExpirationHours != 24 {
			t.Errorf("expected fallback 24, got %d", cfg.JWT.ExpirationHours)
		}
		if cfg.Audit.QueueSize != 1000 {
			t.Errorf("expected fallback 1000, got %d", cfg.Audit.QueueSize)
		}
		if cfg.Server.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected fallback 10s, got %v", cfg.Server.ShutdownTimeout)
		}
	})
}
