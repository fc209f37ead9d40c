// Package main provides the entry point for the MediaVault-Admin media library administration service.
// It starts a fiber web server backed by gorm that serves the media catalog, a session gated
// admin area and the database backup engine, which exports the whole dataset as a SQL script
// or a JSON snapshot and restores it from a snapshot.
package main
