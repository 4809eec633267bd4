package database

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/connorholly11/friend-meetup/internal/config"
	"github.com/connorholly11/friend-meetup/internal/models"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var registerFunctionsOnce sync.Once

// Connect opens the configured store and migrates every ledger table.
// Each call returns an independent handle; nothing is kept at package level.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite, "":
		registerSQLiteFunctions()
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(postgresDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	if isInMemory(cfg) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// every new connection to :memory: is a fresh empty database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return db, nil
}

// OpenInMemory returns an isolated, migrated in-memory store.
func OpenInMemory() (*gorm.DB, error) {
	return Connect(config.DBConfig{Driver: config.DriverSQLite, DSN: ":memory:"})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func postgresDSN(cfg config.DBConfig) string {
	if cfg.DSN != "" && cfg.DSN != ":memory:" {
		return cfg.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
}

func isInMemory(cfg config.DBConfig) bool {
	if cfg.Driver != config.DriverSQLite && cfg.Driver != "" {
		return false
	}
	return cfg.DSN == "" || strings.Contains(cfg.DSN, ":memory:") || strings.Contains(cfg.DSN, "mode=memory")
}

// sqliteTimeLayout is the text layout the driver writes and parses for
// DATETIME columns. NOW() must produce the same text or reads fail.
const sqliteTimeLayout = "2006-01-02 15:04:05.999999999-07:00"

// registerSQLiteFunctions gives sqlite the NOW() available on postgres.
func registerSQLiteFunctions() {
	registerFunctionsOnce.Do(func() {
		gosqlite.MustRegisterScalarFunction("NOW", 0, func(ctx *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			return time.Now().UTC().Format(sqliteTimeLayout), nil
		})
	})
}
