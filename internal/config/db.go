package config

const (
	// EngineMySQL selects the MySQL/MariaDB gorm driver.
	EngineMySQL = "mysql"
	// EnginePostgres selects the PostgreSQL gorm driver.
	EnginePostgres = "postgres"
	// EngineSQLite selects the pure go SQLite gorm driver.
	EngineSQLite = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string
	Path       string // database file for the sqlite engine, ":memory:" for a throwaway store
}
