// Package engine opens the gorm connection for the configured database engine and migrates the schema.
package engine

import (
	"fmt"

	"github.com/glebarez/sqlite"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/dsn"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/logger"
	gormlog "github.com/MediaVault-Admin/MediaVault-Admin/internal/logger/adapter/gorm"
)

const memoryPath = ":memory:"

// Dialector returns the gorm driver for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return gormmysql.Open(dsn.MySQL(cfg.DB)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(cfg.DB)), nil
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.SQLite(cfg.DB)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the database and migrates all models.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormlog.New(cfg.Log.SQLLogLevel),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// every connection to :memory: is a new empty database, keep exactly one
	if cfg.DB.GormEngine == config.EngineSQLite && cfg.DB.Path == memoryPath {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql pool: %w", err)
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the tables of all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// OpenMemory opens a migrated in-memory sqlite database, used by tests and dry runs.
func OpenMemory() (*gorm.DB, error) {
	return Open(&config.Config{
		DB:  config.DB{GormEngine: config.EngineSQLite, Path: memoryPath},
		Log: logger.Log{SQLLogLevel: "silent"},
	})
}
