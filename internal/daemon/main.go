// Package daemon wires the database, the session store and the web service together.
package daemon

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/dsn"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/engine"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/session"
)

// SessionTable holds the sessions on the mysql and postgres engines.
const SessionTable = "sessions"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start serves http on the configured port until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	db, err := engine.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = SeedAdmin(cfg, db); err != nil {
		return nil, err
	}

	session.Init(SessionStorage(cfg))

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}, nil
}

// OpenDB opens the configured store for the one-shot commands.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	return engine.Open(cfg)
}

// SessionStorage returns the session backend of the configured engine. Sessions live in a table
// of the same database on mysql and postgres. On sqlite they are kept in memory, nil is returned.
func SessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(cfg.DB),
			Table:         SessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(cfg.DB),
			Table:         SessionTable,
		})
	default:
		log.Warn().Msg("sqlite engine: sessions are kept in memory and end with the process")

		return nil
	}
}
