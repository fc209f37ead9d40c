package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups media items.
type Category struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id" validate:"required"`
	Name        string  `gorm:"uniqueIndex;size:255;not null" json:"name" validate:"required"`
	Description *string `gorm:"type:text" json:"description"`
	// Color is a hex color like #22c55e used by the UI.
	Color     *string   `gorm:"size:7" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName implements schema.Tabler.
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate assigns a UUID to categories created without an id.
func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}

	return nil
}
