package persistence

import (
	"fmt"
	"strings"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence/models"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	memoryDSN           = ":memory:"
	postgresMaxOpen     = 20
	postgresMaxIdle     = 5
	postgresMaxLifetime = 30 * time.Minute
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
}

// NewDBConnection opens the store selected by settings.Type.
// For postgres the database settings.Name is created on first use.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	switch settings.Type {
	case config.PostgresDbType:
		return openPostgres(settings)
	case config.SqliteDbType:
		return openSQLite(settings.DSN)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

func openPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if settings.Name != "" {
		if err := ensurePostgresDatabase(settings.DSN, settings.Name); err != nil {
			return nil, err
		}
		dsn = settings.DSN + " dbname=" + settings.Name
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(postgresMaxOpen)
	sqlDB.SetMaxIdleConns(postgresMaxIdle)
	sqlDB.SetConnMaxLifetime(postgresMaxLifetime)
	return db, nil
}

// ensurePostgresDatabase connects through the server DSN and creates name when missing
func ensurePostgresDatabase(serverDSN, name string) error {
	admin, err := gorm.Open(postgres.Open(serverDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() { _ = CloseDB(admin) }()

	var count int64
	if err := admin.Raw("SELECT count(*) FROM pg_database WHERE datname = ?", name).Scan(&count).Error; err != nil {
		return fmt.Errorf("failed to look up database %q: %w", name, err)
	}
	if count > 0 {
		return nil
	}
	if err := admin.Exec("CREATE DATABASE " + quoteIdentifier(name)).Error; err != nil {
		return fmt.Errorf("failed to create database %q: %w", name, err)
	}
	return nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func openSQLite(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = memoryDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	// each connection to :memory: sees its own empty database
	if dsn == memoryDSN {
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates the schema of every table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the pool behind db
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
