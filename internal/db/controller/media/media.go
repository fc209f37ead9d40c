// Package media provides CRUD operations and queries for media items.
package media

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

const newestFirst = "created_at DESC"

var (
	// ErrMediaNotFound is returned when a media item is not found.
	ErrMediaNotFound = errors.New("media not found")
	// ErrInvalidType is returned for media types other than video, image, logo and banner.
	ErrInvalidType = errors.New("invalid media type")
	// ErrTitleEmpty is returned when a media item has no title.
	ErrTitleEmpty = errors.New("media title cannot be empty")
	// ErrUploaderEmpty is returned when a media item has no uploader.
	ErrUploaderEmpty = errors.New("media uploader cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List returns all media items, newest first.
func List(db *gorm.DB) ([]models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.Media
	if err := db.Order(newestFirst).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// ListByType returns the media items of one type, newest first.
func ListByType(db *gorm.DB, t models.MediaType) ([]models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if !t.Valid() {
		return nil, ErrInvalidType
	}

	var items []models.Media
	if err := db.Where("type = ?", t).Order(newestFirst).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// ListByCategory returns the media items of one category, newest first.
func ListByCategory(db *gorm.DB, categoryID string) ([]models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.Media
	if err := db.Where("category_id = ?", categoryID).Order(newestFirst).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// Search matches the query case-insensitively against title, description and tags.
func Search(db *gorm.DB, query string) ([]models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return List(db)
	}

	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	// tags are text[] on postgres and a JSON document everywhere else
	tagsExpr := "LOWER(tags)"
	if db.Dialector.Name() == "postgres" {
		tagsExpr = "LOWER(array_to_string(tags, ' '))"
	}

	var items []models.Media

	err := db.
		Where(
			"LOWER(title) LIKE ? ESCAPE '!' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '!' OR "+
				tagsExpr+" LIKE ? ESCAPE '!'",
			pattern, pattern, pattern,
		).
		Order(newestFirst).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetByID retrieves a media item by id.
func GetByID(db *gorm.DB, id string) (*models.Media, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var m models.Media

	result := db.Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMediaNotFound
		}

		return nil, result.Error
	}

	return &m, nil
}

// Create inserts a media item. Category and uploader references are checked by the store.
func Create(db *gorm.DB, m *models.Media) error {
	if db == nil {
		return ErrDBNil
	}

	if err := check(m); err != nil {
		return err
	}

	return db.Create(m).Error
}

// Update replaces the editable fields of the media item with the given id.
func Update(db *gorm.DB, id string, changes models.Media) (*models.Media, error) {
	m, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if changes.Title != "" {
		m.Title = changes.Title
	}

	if changes.Type != "" {
		m.Type = changes.Type
	}

	if changes.Description != nil {
		m.Description = changes.Description
	}

	if changes.CategoryID != nil {
		m.CategoryID = changes.CategoryID
		if *m.CategoryID == "" {
			m.CategoryID = nil
		}
	}

	if changes.Tags != nil {
		m.Tags = changes.Tags
	}

	if changes.ThumbnailURL != nil {
		m.ThumbnailURL = changes.ThumbnailURL
	}

	if err := check(m); err != nil {
		return nil, err
	}

	if err := db.Omit("Category", "Uploader").Save(m).Error; err != nil {
		return nil, err
	}

	return m, nil
}

// Delete deletes a media item by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.Media{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMediaNotFound
	}

	return nil
}

func check(m *models.Media) error {
	switch {
	case strings.TrimSpace(m.Title) == "":
		return ErrTitleEmpty
	case !m.Type.Valid():
		return ErrInvalidType
	case m.UploadedBy == "":
		return ErrUploaderEmpty
	}

	return nil
}

// escapeLike escapes the LIKE wildcards of s with '!'.
func escapeLike(s string) string {
	return strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`).Replace(s)
}
