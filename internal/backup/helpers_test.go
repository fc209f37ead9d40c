package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/engine"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

var fixedNow = time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC) //nolint:gochecknoglobals

func strPtr(s string) *string { return &s }

// setupTestDB creates an in-memory SQLite database and a service with a fixed clock.
func setupTestDB(t *testing.T) (*gorm.DB, *Service) {
	t.Helper()

	db, err := engine.OpenMemory()
	require.NoError(t, err, "failed to create test database")

	svc := NewService(db)
	svc.now = func() time.Time { return fixedNow }

	return db, svc
}

type fixture struct {
	admin    models.User
	visitor  models.User
	nature   models.Category
	city     models.Category
	sunset   models.Media
	skyline  models.Media
	settings models.SystemSettings
}

// seed fills the store with two users, two categories, two media items and the settings row.
func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	f := fixture{
		admin: models.User{
			Email: "admin@x.com", Password: models.HashPassword("admin-secret"), Role: models.RoleAdmin,
			FirstName: strPtr("Ada"), CreatedAt: base,
		},
		visitor: models.User{
			Email: "visitor@x.com", Password: models.HashPassword("visitor-secret"), Role: models.RoleVisitor,
			CreatedAt: base.Add(time.Minute),
		},
		nature: models.Category{Name: "Nature", Color: strPtr("#22c55e"), CreatedAt: base},
		city:   models.Category{Name: "City's best", Description: strPtr("line one\nline two"), CreatedAt: base.Add(time.Minute)},
	}

	require.NoError(t, db.Create(&f.admin).Error)
	require.NoError(t, db.Create(&f.visitor).Error)
	require.NoError(t, db.Create(&f.nature).Error)
	require.NoError(t, db.Create(&f.city).Error)

	f.sunset = models.Media{
		Title: "Sunset", Type: models.MediaTypeVideo, CategoryID: &f.nature.ID,
		Tags: models.StringList{"sunset", "it's warm"}, FileURL: "/uploads/sunset.mp4", FileName: "sunset.mp4",
		FileSize: strPtr("12 MB"), UploadedBy: f.admin.ID, CreatedAt: base,
	}
	f.skyline = models.Media{
		Title: "Skyline", Type: models.MediaTypeImage, CategoryID: &f.city.ID,
		FileURL: "/uploads/skyline.jpg", FileName: "skyline.jpg", UploadedBy: f.visitor.ID, CreatedAt: base.Add(time.Minute),
	}

	require.NoError(t, db.Create(&f.sunset).Error)
	require.NoError(t, db.Create(&f.skyline).Error)

	f.settings = models.SystemSettings{
		ID: models.SystemSettingsID, LogoURL: strPtr("/uploads/logo.svg"), PageViews: 42,
		WhatsappNumbers: models.StringList{"+15550100"}, UpdatedAt: base,
	}
	require.NoError(t, db.Create(&f.settings).Error)

	return f
}

type categoryView struct{ ID, Name, Description, Color string }

type mediaView struct {
	ID, Title, Type, CategoryID, UploadedBy, FileURL, FileName string
	Tags                                                       []string
}

type settingsView struct {
	ID, LogoURL string
	PageViews   int64
	Numbers     []string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func categoriesOf(t *testing.T, db *gorm.DB) []categoryView {
	t.Helper()

	var rows []models.Category
	require.NoError(t, db.Order("id").Find(&rows).Error)

	out := make([]categoryView, 0, len(rows))
	for _, c := range rows {
		out = append(out, categoryView{c.ID, c.Name, deref(c.Description), deref(c.Color)})
	}

	return out
}

func mediaOf(t *testing.T, db *gorm.DB) []mediaView {
	t.Helper()

	var rows []models.Media
	require.NoError(t, db.Order("id").Find(&rows).Error)

	out := make([]mediaView, 0, len(rows))
	for _, m := range rows {
		out = append(out, mediaView{
			ID: m.ID, Title: m.Title, Type: string(m.Type), CategoryID: deref(m.CategoryID),
			UploadedBy: m.UploadedBy, FileURL: m.FileURL, FileName: m.FileName, Tags: m.Tags.OrEmpty(),
		})
	}

	return out
}

func settingsOf(t *testing.T, db *gorm.DB) []settingsView {
	t.Helper()

	var rows []models.SystemSettings
	require.NoError(t, db.Order("id").Find(&rows).Error)

	out := make([]settingsView, 0, len(rows))
	for _, s := range rows {
		out = append(out, settingsView{s.ID, deref(s.LogoURL), s.PageViews, s.WhatsappNumbers.OrEmpty()})
	}

	return out
}

func emailsOf(t *testing.T, db *gorm.DB) []string {
	t.Helper()

	var emails []string
	require.NoError(t, db.Model(&models.User{}).Order("email").Pluck("email", &emails).Error)

	return emails
}
