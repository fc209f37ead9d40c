// Package service provides CRUD operations for the offered services.
package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

var (
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrServiceNameEmpty is returned when a service has no name.
	ErrServiceNameEmpty = errors.New("service name cannot be empty")
	// ErrInvalidStatus is returned for statuses other than active and inactive.
	ErrInvalidStatus = errors.New("invalid service status")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List returns all services, newest first.
func List(db *gorm.DB) ([]models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var services []models.Service
	if err := db.Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

// ListActive returns the services with status active, ordered by name.
func ListActive(db *gorm.DB) ([]models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var services []models.Service

	err := db.Where("status = ?", models.ServiceStatusActive).Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}

	return services, nil
}

// GetByID retrieves a service by id.
func GetByID(db *gorm.DB, id string) (*models.Service, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.Service

	result := db.Where("id = ?", id).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}

		return nil, result.Error
	}

	return &s, nil
}

// Create inserts a service, an empty status becomes active.
func Create(db *gorm.DB, s *models.Service) error {
	if db == nil {
		return ErrDBNil
	}

	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ErrServiceNameEmpty
	}

	if s.Status == "" {
		s.Status = models.ServiceStatusActive
	}

	if s.Status != models.ServiceStatusActive && s.Status != models.ServiceStatusInactive {
		return ErrInvalidStatus
	}

	return db.Create(s).Error
}

// Update applies the non-empty fields of changes to the service with the given id.
func Update(db *gorm.DB, id string, changes models.Service) (*models.Service, error) {
	s, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(changes.Name); name != "" {
		s.Name = name
	}

	if changes.Category != "" {
		s.Category = changes.Category
	}

	if changes.Description != "" {
		s.Description = changes.Description
	}

	if changes.Price != "" {
		s.Price = changes.Price
	}

	if changes.Status != "" {
		if changes.Status != models.ServiceStatusActive && changes.Status != models.ServiceStatusInactive {
			return nil, ErrInvalidStatus
		}

		s.Status = changes.Status
	}

	if changes.Technologies != nil {
		s.Technologies = changes.Technologies
	}

	if changes.ImageURL != nil {
		s.ImageURL = changes.ImageURL
	}

	if err := db.Save(s).Error; err != nil {
		return nil, err
	}

	return s, nil
}

// Delete deletes a service by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
