package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.GormEngine is not one of mysql, postgres or sqlite.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be mysql, postgres or sqlite")

	// ErrNegativeUploadSize error if config backup.maxUploadSizeMB is below zero.
	ErrNegativeUploadSize = errors.New("toml config backup.maxUploadSizeMB can not be negative")

	// ErrNilConfig error if a component is started without configuration.
	ErrNilConfig = errors.New("config is nil")
)
