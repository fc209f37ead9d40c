package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaType is the kind of a media item.
type MediaType string

const (
	// MediaTypeVideo is a video file.
	MediaTypeVideo MediaType = "video"
	// MediaTypeImage is a picture.
	MediaTypeImage MediaType = "image"
	// MediaTypeLogo is a logo graphic.
	MediaTypeLogo MediaType = "logo"
	// MediaTypeBanner is a banner graphic.
	MediaTypeBanner MediaType = "banner"
)

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeVideo, MediaTypeImage, MediaTypeLogo, MediaTypeBanner:
		return true
	default:
		return false
	}
}

// Media is an uploaded file of the library.
type Media struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id" validate:"required"`
	Title       string    `gorm:"size:255;not null" json:"title" validate:"required"`
	Description *string   `gorm:"type:text" json:"description"`
	Type        MediaType `gorm:"type:varchar(20);not null;index" json:"type" validate:"required,oneof=video image logo banner"`
	// CategoryID optionally references a category.
	CategoryID *string   `gorm:"size:36;index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
	// Tags keep their order.
	Tags         StringList `gorm:"not null" json:"tags"`
	FileURL      string     `gorm:"size:1024;not null" json:"fileUrl" validate:"required"`
	ThumbnailURL *string    `gorm:"size:1024" json:"thumbnailUrl"`
	FileName     string     `gorm:"size:255;not null" json:"fileName" validate:"required"`
	// FileSize is the human readable size as reported by the uploader.
	FileSize *string `gorm:"size:64" json:"fileSize"`
	MimeType *string `gorm:"size:128" json:"mimeType"`
	// UploadedBy references the user who uploaded the file.
	UploadedBy string    `gorm:"size:36;not null;index" json:"uploadedBy" validate:"required"`
	Uploader   *User     `gorm:"foreignKey:UploadedBy;references:ID" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName implements schema.Tabler.
func (Media) TableName() string {
	return "media"
}

// BeforeCreate assigns a UUID and normalizes the tag list.
func (m *Media) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = newID()
	}

	m.Tags = m.Tags.OrEmpty()

	return nil
}
