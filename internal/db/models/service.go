package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceStatus tells whether a service is offered.
type ServiceStatus string

const (
	// ServiceStatusActive services are listed publicly.
	ServiceStatusActive ServiceStatus = "active"
	// ServiceStatusInactive services are hidden.
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Service is an offering presented on the site, e.g. video production.
type Service struct {
	ID           string        `gorm:"primaryKey;size:36" json:"id"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	Category     string        `gorm:"size:255;not null" json:"category"`
	Description  string        `gorm:"type:text;not null" json:"description"`
	Price        string        `gorm:"size:64;not null" json:"price"`
	Status       ServiceStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Technologies StringList    `gorm:"not null" json:"technologies"`
	ImageURL     *string       `gorm:"size:1024" json:"imageUrl"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// TableName implements schema.Tabler.
func (Service) TableName() string {
	return "services"
}

// BeforeCreate assigns a UUID and normalizes the technology list.
func (s *Service) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = newID()
	}

	s.Technologies = s.Technologies.OrEmpty()

	return nil
}
