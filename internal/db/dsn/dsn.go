// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
)

// SQLitePragmas are appended to every sqlite path so foreign keys are enforced.
const SQLitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Create builds the Data Source Name for the configured gorm engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return Postgres(cfg.DB)
	case config.EngineSQLite:
		return SQLite(cfg.DB)
	default:
		return MySQL(cfg.DB)
	}
}

// MySQL builds a go-sql-driver DSN, e.g. user:pass@tcp(host:3306)/db?parseTime=true.
func MySQL(db config.DB) string {
	extras := db.Extras
	if extras == "" {
		extras = "charset=utf8mb4&parseTime=True&loc=UTC"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		extras,
	)
}

// Postgres builds a postgres:// URL understood by pgx and the gofiber postgres storage.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:     "/" + db.Name,
		RawQuery: db.Extras,
	}

	return u.String()
}

// SQLite returns the database path with the connection pragmas.
func SQLite(db config.DB) string {
	sep := "?"
	if strings.Contains(db.Path, "?") {
		sep = "&"
	}

	return db.Path + sep + SQLitePragmas
}
