package backup

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

const (
	// SnapshotVersion is the format version written into the metadata envelope.
	SnapshotVersion = "1.0"

	exportDateLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Metadata is the envelope of a snapshot.
type Metadata struct {
	ExportDate   string `json:"exportDate"`
	Database     string `json:"database"`
	Version      string `json:"version"`
	TotalRecords int    `json:"totalRecords"`
}

// UserRecord is a user as written into a snapshot, it never carries a credential.
type UserRecord struct {
	ID              string      `json:"id" validate:"required"`
	Email           string      `json:"email" validate:"required"`
	FirstName       *string     `json:"firstName"`
	LastName        *string     `json:"lastName"`
	ProfileImageURL *string     `json:"profileImageUrl"`
	Role            models.Role `json:"role" validate:"omitempty,oneof=admin visitor"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// SnapshotData holds the rows of a snapshot, keyed like the Order entity names.
type SnapshotData struct {
	Categories     []models.Category       `json:"categories"`
	Users          []UserRecord            `json:"users"`
	Media          []models.Media          `json:"media"`
	SystemSettings []models.SystemSettings `json:"systemSettings"`
}

// Snapshot is the JSON export document.
type Snapshot struct {
	Metadata Metadata     `json:"metadata"`
	Data     SnapshotData `json:"data"`
}

// Encode returns the snapshot as indented JSON.
func (s *Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// newSnapshot builds the document for a dataset, user credentials are dropped.
func newSnapshot(d *Dataset, dl Dialect, now time.Time) *Snapshot {
	return &Snapshot{
		Metadata: Metadata{
			ExportDate:   now.UTC().Format(exportDateLayout),
			Database:     dl.Label(),
			Version:      SnapshotVersion,
			TotalRecords: d.Records(),
		},
		Data: SnapshotData{
			Categories:     d.Categories,
			Users:          redactUsers(d.Users),
			Media:          d.Media,
			SystemSettings: d.Settings,
		},
	}
}
