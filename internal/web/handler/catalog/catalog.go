// Package catalog serves the media library API: public reads of categories, media, services
// and settings, and the admin writes behind the session gate.
package catalog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/auth"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/category"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/media"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/service"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/systemsettings"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler"
)

const (
	// APIPath is the prefix of the public routes.
	APIPath = "/api"

	// AdminAPIPath is the prefix of the admin routes.
	AdminAPIPath = "/api/admin"
)

// Service is the catalog handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	gate      *auth.Gate
	validator XValidator
}

var _ handler.Service = (*Service)(nil)

// Handler is the catalog handler.
var Handler = Service{}

// Init initializes the catalog handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, gate *auth.Gate) error {
	if app == nil || cfg == nil || db == nil || gate == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.gate = gate
	s.validator = NewValidator()

	app.Route(APIPath, func(router fiber.Router) {
		router.Get("/auth/user", s.CurrentUser)
		router.Get("/categories", s.ListCategories)
		router.Get("/media", s.ListMedia)
		router.Get("/media/:id", s.GetMedia)
		router.Get("/services", s.ListServices)
		router.Get("/settings", s.GetSettings)
		router.Post("/settings/page-views", s.CountPageView)
	})

	app.Route(AdminAPIPath, func(router fiber.Router) {
		router.Use(gate.RequireAdmin())

		router.Post("/categories", s.CreateCategory)
		router.Put("/categories/:id", s.UpdateCategory)
		router.Delete("/categories/:id", s.DeleteCategory)

		router.Patch("/media/:id", s.UpdateMedia)
		router.Delete("/media/:id", s.DeleteMedia)

		router.Get("/services", s.ListAllServices)
		router.Post("/services", s.CreateService)
		router.Put("/services/:id", s.UpdateService)
		router.Delete("/services/:id", s.DeleteService)

		router.Put("/settings", s.UpdateSettings)
	})

	return nil
}

// CurrentUser returns the signed in account.
func (s *Service) CurrentUser(c *fiber.Ctx) error {
	u, err := s.gate.CurrentUser(c)
	if errors.Is(err, auth.ErrUnauthenticated) {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	if err != nil {
		return serverError(c, err, "Failed to fetch user")
	}

	return c.JSON(u)
}

// ListCategories returns all categories by name.
func (s *Service) ListCategories(c *fiber.Ctx) error {
	categories, err := category.List(s.db.WithContext(c.UserContext()))
	if err != nil {
		return serverError(c, err, "Failed to fetch categories")
	}

	return c.JSON(categories)
}

// ListMedia returns media items, filtered by ?q (or ?search), ?type or ?category in that precedence.
func (s *Service) ListMedia(c *fiber.Ctx) error {
	db := s.db.WithContext(c.UserContext())

	var (
		items []models.Media
		err   error
	)

	query := c.Query("q", c.Query("search"))

	switch {
	case query != "":
		items, err = media.Search(db, query)
	case c.Query("type") != "":
		t := models.MediaType(c.Query("type"))
		if !t.Valid() {
			return badRequest(c, media.ErrInvalidType.Error())
		}

		items, err = media.ListByType(db, t)
	case c.Query("category") != "":
		items, err = media.ListByCategory(db, c.Query("category"))
	default:
		items, err = media.List(db)
	}

	if err != nil {
		return serverError(c, err, "Failed to fetch media")
	}

	return c.JSON(items)
}

// GetMedia returns one media item.
func (s *Service) GetMedia(c *fiber.Ctx) error {
	m, err := media.GetByID(s.db.WithContext(c.UserContext()), c.Params("id"))
	if errors.Is(err, media.ErrMediaNotFound) {
		return notFound(c, "Media not found")
	}

	if err != nil {
		return serverError(c, err, "Failed to fetch media")
	}

	return c.JSON(m)
}

// ListServices returns the active services.
func (s *Service) ListServices(c *fiber.Ctx) error {
	services, err := service.ListActive(s.db.WithContext(c.UserContext()))
	if err != nil {
		return serverError(c, err, "Failed to fetch services")
	}

	return c.JSON(services)
}

// GetSettings returns the site settings.
func (s *Service) GetSettings(c *fiber.Ctx) error {
	settings, err := systemsettings.Get(s.db.WithContext(c.UserContext()))
	if err != nil {
		return serverError(c, err, "Failed to fetch settings")
	}

	return c.JSON(settings)
}

// CountPageView increments the page view counter.
func (s *Service) CountPageView(c *fiber.Ctx) error {
	views, err := systemsettings.IncrementPageViews(s.db.WithContext(c.UserContext()))
	if err != nil {
		return serverError(c, err, "Failed to count page view")
	}

	return c.JSON(fiber.Map{"pageViews": views})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func conflict(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

// serverError logs err and answers with msg only.
func serverError(c *fiber.Ctx, err error, msg string) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(msg)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": msg})
}
