package backup

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProduceScript exports the whole dataset as a SQL script for the connected engine.
func (s *Service) ProduceScript(ctx context.Context) ([]byte, error) {
	start := time.Now()

	d, err := s.read(ctx)
	if err != nil {
		observe(operationExport, formatSQL, time.Since(start).Seconds(), err)
		return nil, err
	}

	script := writeScript(d, s.Dialect(), s.now())

	observe(operationExport, formatSQL, time.Since(start).Seconds(), nil)
	log.Info().Str("format", formatSQL).Int("records", d.Records()).Int("bytes", len(script)).Msg("database exported")

	return script, nil
}

// ProduceSnapshot exports the whole dataset as a snapshot document without user credentials.
func (s *Service) ProduceSnapshot(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	d, err := s.read(ctx)
	if err != nil {
		observe(operationExport, formatJSON, time.Since(start).Seconds(), err)
		return nil, err
	}

	snap := newSnapshot(d, s.Dialect(), s.now())

	observe(operationExport, formatJSON, time.Since(start).Seconds(), nil)
	log.Info().Str("format", formatJSON).Int("records", snap.Metadata.TotalRecords).Msg("database exported")

	return snap, nil
}

// read loads all tables in one read transaction, so the artifact is a consistent view.
func (s *Service) read(ctx context.Context) (*Dataset, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var d *Dataset

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		d, err = load(tx)

		return err
	}, s.readTxOptions()...)
	if err != nil {
		log.Error().Err(err).Msg("failed to read database for export")
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	return d, nil
}

// readTxOptions asks for a snapshot isolated read where the engine supports it.
// SQLite transactions are serializable already.
func (s *Service) readTxOptions() []*sql.TxOptions {
	switch s.db.Dialector.Name() {
	case "postgres", "mysql":
		return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead, ReadOnly: true}}
	default:
		return nil
	}
}
