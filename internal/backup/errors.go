package backup

import "errors"

var (
	// ErrInvalidSnapshot is returned for a malformed snapshot document. The wrapping error carries the detail.
	ErrInvalidSnapshot = errors.New("invalid backup file")

	// ErrUnsupportedFormat is returned when a restore from a SQL script is requested.
	ErrUnsupportedFormat = errors.New("SQL restore not implemented yet. Please use JSON backup for restoration.") //nolint:revive,staticcheck // shown to operators as is

	// ErrExportFailed wraps store errors raised while exporting.
	ErrExportFailed = errors.New("export failed")

	// ErrRestoreFailed wraps store errors raised while restoring, nothing was committed.
	ErrRestoreFailed = errors.New("restore failed")

	// ErrDBNil is returned when the service has no database connection.
	ErrDBNil = errors.New("database connection is nil")
)
