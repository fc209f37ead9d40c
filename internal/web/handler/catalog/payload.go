package catalog

import (
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

// CategoryPayload is the body of category writes.
type CategoryPayload struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
}

func (p CategoryPayload) model() models.Category {
	return models.Category{Name: p.Name, Description: p.Description, Color: p.Color}
}

// MediaPayload is the body of media updates, absent fields are left alone.
type MediaPayload struct {
	Title        string   `json:"title" validate:"omitempty,max=255"`
	Description  *string  `json:"description"`
	Type         string   `json:"type" validate:"omitempty,oneof=video image logo banner"`
	CategoryID   *string  `json:"categoryId"`
	Tags         []string `json:"tags" validate:"omitempty,dive,required"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
}

func (p MediaPayload) model() models.Media {
	return models.Media{
		Title:        p.Title,
		Description:  p.Description,
		Type:         models.MediaType(p.Type),
		CategoryID:   p.CategoryID,
		Tags:         models.StringList(p.Tags),
		ThumbnailURL: p.ThumbnailURL,
	}
}

// ServicePayload is the body of service writes.
type ServicePayload struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Category     string   `json:"category" validate:"required,max=255"`
	Description  string   `json:"description" validate:"required"`
	Price        string   `json:"price" validate:"required,max=64"`
	Status       string   `json:"status" validate:"omitempty,oneof=active inactive"`
	Technologies []string `json:"technologies" validate:"omitempty,dive,required"`
	ImageURL     *string  `json:"imageUrl"`
}

func (p ServicePayload) model() models.Service {
	return models.Service{
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Price:        p.Price,
		Status:       models.ServiceStatus(p.Status),
		Technologies: models.StringList(p.Technologies),
		ImageURL:     p.ImageURL,
	}
}

// SettingsPayload is the body of the settings update.
type SettingsPayload struct {
	LogoURL         *string  `json:"logoUrl"`
	WhatsappNumbers []string `json:"whatsappNumbers" validate:"omitempty,dive,required,max=32"`
}
