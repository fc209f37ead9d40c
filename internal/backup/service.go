package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service exports and restores the database behind db.
type Service struct {
	db *gorm.DB
	// now is replaced in tests
	now func() time.Time
}

// NewService creates a backup service for db.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Dialect returns the dialect of the connected database.
func (s *Service) Dialect() Dialect {
	return DialectFor(s.db.Dialector.Name())
}

// RestoreFromSnapshot replaces the dataset with the rows of a snapshot and returns the number
// of inserted rows. Admin accounts are kept, as is every account whose email is already taken.
// Nothing is changed when an error is returned.
func (s *Service) RestoreFromSnapshot(ctx context.Context, body []byte) (int, error) {
	start := time.Now()

	restored, err := s.restoreSnapshot(ctx, body)
	observe(operationRestore, formatJSON, time.Since(start).Seconds(), err)

	if err != nil {
		return 0, err
	}

	recordsRestoredTotal.Add(float64(restored))
	log.Info().Int("records", restored).Msg("database restored")

	return restored, nil
}

func (s *Service) restoreSnapshot(ctx context.Context, body []byte) (int, error) {
	if s.db == nil {
		return 0, ErrDBNil
	}

	doc, err := Decode(body)
	if err != nil {
		log.Warn().Err(err).Msg("rejected backup file")
		return 0, err
	}

	run := &restoreRun{now: s.now().UTC(), userIDs: map[string]string{}}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		run.tx = tx

		return run.apply(doc.Data)
	})
	if err != nil {
		log.Error().Err(err).Msg("restore rolled back")
		return 0, fmt.Errorf("%w: %w", ErrRestoreFailed, err)
	}

	return run.restored, nil
}

// RestoreFromScript always fails with ErrUnsupportedFormat and touches nothing.
func (s *Service) RestoreFromScript(_ context.Context, _ []byte) (int, error) {
	observe(operationRestore, formatSQL, 0, ErrUnsupportedFormat)

	return 0, ErrUnsupportedFormat
}

// Restore picks the restore path from the file name and the payload.
func (s *Service) Restore(ctx context.Context, filename string, body []byte) (int, error) {
	if IsScript(filename, body) {
		return s.RestoreFromScript(ctx, body)
	}

	return s.RestoreFromSnapshot(ctx, body)
}

// IsScript reports whether an uploaded file is a SQL script rather than a snapshot.
func IsScript(filename string, body []byte) bool {
	if strings.EqualFold(filepath.Ext(filename), ".sql") {
		return true
	}

	head := bytes.TrimSpace(body)
	if len(head) > 16 {
		head = head[:16]
	}

	upper := strings.ToUpper(string(head))

	return strings.HasPrefix(upper, "--") || strings.HasPrefix(upper, "DELETE ") || strings.HasPrefix(upper, "INSERT ")
}

// IsClientError reports whether err was caused by the uploaded file rather than the store.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSnapshot) || errors.Is(err, ErrUnsupportedFormat)
}
