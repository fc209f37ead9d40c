package models

import (
	"time"
)

// SystemSettingsID is the fixed primary key of the only settings row.
const SystemSettingsID = "default"

// SystemSettings holds site wide settings. At most one row exists, keyed on SystemSettingsID.
type SystemSettings struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	LogoURL         *string    `gorm:"size:1024" json:"logoUrl"`
	PageViews       int64      `gorm:"not null;default:0" json:"pageViews"`
	WhatsappNumbers StringList `gorm:"not null" json:"whatsappNumbers"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// TableName implements schema.Tabler.
func (SystemSettings) TableName() string {
	return "system_settings"
}
