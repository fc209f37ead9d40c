package config

import (
	"time"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Backup holds the settings of the backup export and restore endpoints.
type Backup struct {
	MaxUploadSizeMB int    // largest accepted restore upload in megabytes
	FilenamePrefix  string // prefix of the download filename, default "database-backup"
}

// Admin is the account created on the first start of an empty store.
type Admin struct {
	Email    string
	Password string // a random one is generated and logged once when empty
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Backup    Backup
	Admin     Admin
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}
