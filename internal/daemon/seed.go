package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/auth"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/category"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/media"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/service"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/systemsettings"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/user"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/uniuri"
)

// SeedAdmin creates the configured admin account when the store has no admin yet.
// Without a configured password a random one is generated and logged once.
func SeedAdmin(cfg *config.Config, db *gorm.DB) error {
	admins, err := user.ListByRole(db, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}

	if len(admins) > 0 {
		return nil
	}

	password := cfg.Admin.Password
	generated := password == ""

	if generated {
		password = uniuri.New()
	}

	if _, err = auth.NewLocalProvider(db).CreateAdmin(cfg.Admin.Email, password, "", ""); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	if generated {
		log.Warn().Str("email", cfg.Admin.Email).Str("password", password).
			Msg("created the initial admin account, change the password with `user reset-password`")
	} else {
		log.Info().Str("email", cfg.Admin.Email).Msg("created the initial admin account")
	}

	return nil
}

// SeedResult counts what SeedSamples added.
type SeedResult struct {
	Categories int
	Media      int
	Services   int
	Settings   bool
}

var sampleCategories = []models.Category{
	{Name: "Nature", Description: strPtr("Landscapes, wildlife and outdoor footage"), Color: strPtr("#16a34a")},
	{Name: "City", Description: strPtr("Skylines and street life"), Color: strPtr("#2563eb")},
	{Name: "Corporate", Description: strPtr("Brand assets and company events"), Color: strPtr("#9333ea")},
}

var sampleServices = []models.Service{
	{
		Name: "Video production", Category: "video", Price: "from 1500",
		Description:  "Concept, shooting and editing of promotional videos.",
		Technologies: models.StringList{"4K", "DaVinci Resolve"},
	},
	{
		Name: "Photography", Category: "image", Price: "from 400",
		Description:  "Product and event photography.",
		Technologies: models.StringList{"Lightroom"},
	},
}

// SeedSamples fills an empty catalog with sample categories, media, services and the default
// settings. Parts that already hold data are left alone, so running it twice adds nothing.
func SeedSamples(db *gorm.DB, uploader *models.User) (SeedResult, error) {
	var res SeedResult

	if uploader == nil {
		return res, user.ErrUserNotFound
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]string, len(sampleCategories))

		for _, sample := range sampleCategories {
			existing, err := category.GetByName(tx, sample.Name)
			if err == nil {
				ids[sample.Name] = existing.ID
				continue
			}

			if !errors.Is(err, category.ErrCategoryNotFound) {
				return err
			}

			c := sample
			if err = category.Create(tx, &c); err != nil {
				return fmt.Errorf("category %q: %w", sample.Name, err)
			}

			ids[sample.Name] = c.ID
			res.Categories++
		}

		if err := seedMedia(tx, uploader, ids, &res); err != nil {
			return err
		}

		if err := seedServices(tx, &res); err != nil {
			return err
		}

		var settings int64
		if err := tx.Model(&models.SystemSettings{}).Count(&settings).Error; err != nil {
			return err
		}

		if settings == 0 {
			if _, err := systemsettings.Upsert(tx, systemsettings.Defaults()); err != nil {
				return fmt.Errorf("settings: %w", err)
			}

			res.Settings = true
		}

		return nil
	})

	return res, err
}

func seedMedia(tx *gorm.DB, uploader *models.User, categoryIDs map[string]string, res *SeedResult) error {
	existing, err := media.List(tx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	nature, city := categoryIDs["Nature"], categoryIDs["City"]

	items := []models.Media{
		{
			Title: "Sunset over the lake", Type: models.MediaTypeVideo, CategoryID: &nature,
			Tags: models.StringList{"sunset", "water"}, FileURL: "/uploads/sunset.mp4", FileName: "sunset.mp4",
		},
		{
			Title: "Skyline at night", Type: models.MediaTypeImage, CategoryID: &city,
			Tags: models.StringList{"night"}, FileURL: "/uploads/skyline.jpg", FileName: "skyline.jpg",
		},
		{
			Title: "Company logo", Type: models.MediaTypeLogo, Description: strPtr("Primary brand mark"),
			FileURL: "/uploads/logo.svg", FileName: "logo.svg",
		},
	}

	for i := range items {
		items[i].UploadedBy = uploader.ID

		if err := media.Create(tx, &items[i]); err != nil {
			return fmt.Errorf("media %q: %w", items[i].Title, err)
		}

		res.Media++
	}

	return nil
}

func seedServices(tx *gorm.DB, res *SeedResult) error {
	existing, err := service.List(tx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	for _, sample := range sampleServices {
		s := sample
		if err := service.Create(tx, &s); err != nil {
			return fmt.Errorf("service %q: %w", sample.Name, err)
		}

		res.Services++
	}

	return nil
}

func strPtr(s string) *string { return &s }
