// Package category provides CRUD operations for media categories.
package category

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryNameEmpty is returned when a category has no name.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")
	// ErrCategoryExists is returned when the name is already taken.
	ErrCategoryExists = errors.New("category already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List returns all categories ordered by name.
func List(db *gorm.DB) ([]models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

// GetByID retrieves a category by id.
func GetByID(db *gorm.DB, id string) (*models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var c models.Category

	result := db.Where("id = ?", id).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}

		return nil, result.Error
	}

	return &c, nil
}

// GetByName retrieves a category by its unique name.
func GetByName(db *gorm.DB, name string) (*models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var c models.Category

	result := db.Where("name = ?", strings.TrimSpace(name)).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}

		return nil, result.Error
	}

	return &c, nil
}

// Create inserts a category.
func Create(db *gorm.DB, c *models.Category) error {
	if db == nil {
		return ErrDBNil
	}

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if _, err := GetByName(db, c.Name); err == nil {
		return ErrCategoryExists
	} else if !errors.Is(err, ErrCategoryNotFound) {
		return err
	}

	return db.Create(c).Error
}

// Update changes name, description and color of the category with the given id.
func Update(db *gorm.DB, id string, changes models.Category) (*models.Category, error) {
	c, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(changes.Name); name != "" && name != c.Name {
		if _, err := GetByName(db, name); err == nil {
			return nil, ErrCategoryExists
		}

		c.Name = name
	}

	if changes.Description != nil {
		c.Description = changes.Description
	}

	if changes.Color != nil {
		c.Color = changes.Color
	}

	if err := db.Save(c).Error; err != nil {
		return nil, err
	}

	return c, nil
}

// Delete deletes a category by id. Media still referencing it make the store reject the delete.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
