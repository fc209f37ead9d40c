// Package systemsettings provides the single row accessor for the site wide settings.
package systemsettings

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Get returns the settings row. A store without one yields the defaults, which are not persisted.
func Get(db *gorm.DB) (*models.SystemSettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.SystemSettings

	result := db.Where("id = ?", models.SystemSettingsID).Limit(1).Find(&s)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return Defaults(), nil
	}

	s.WhatsappNumbers = s.WhatsappNumbers.OrEmpty()

	return &s, nil
}

// Defaults returns the settings of a fresh installation.
func Defaults() *models.SystemSettings {
	return &models.SystemSettings{
		ID:              models.SystemSettingsID,
		WhatsappNumbers: models.StringList{},
	}
}

// Upsert writes s as the only settings row. Whatever id s carries, the row is stored under
// models.SystemSettingsID, so a second row can never appear.
func Upsert(db *gorm.DB, s *models.SystemSettings) (*models.SystemSettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	s.ID = models.SystemSettingsID
	s.WhatsappNumbers = s.WhatsappNumbers.OrEmpty()

	if s.PageViews < 0 {
		s.PageViews = 0
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"logo_url", "page_views", "whatsapp_numbers", "updated_at"}),
	}).Create(s)
	if result.Error != nil {
		return nil, result.Error
	}

	return s, nil
}

// IncrementPageViews adds one to the page view counter and creates the row on first use.
func IncrementPageViews(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var views int64

	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := Get(tx)
		if err != nil {
			return err
		}

		current.PageViews++

		if _, err = Upsert(tx, current); err != nil {
			return err
		}

		views = current.PageViews

		return nil
	})

	return views, err
}
