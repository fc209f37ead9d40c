package catalog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/category"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/media"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/service"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/systemsettings"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

// parse decodes the body into payload and validates it. It answers the request itself when
// the payload is rejected, ok is false then.
func (s *Service) parse(c *fiber.Ctx, payload any) (ok bool, err error) {
	if err := c.BodyParser(payload); err != nil {
		return false, badRequest(c, "Invalid request body")
	}

	if errs := s.validator.Validate(payload); len(errs) > 0 {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	return true, nil
}

// CreateCategory adds a category.
func (s *Service) CreateCategory(c *fiber.Ctx) error {
	var p CategoryPayload
	if ok, err := s.parse(c, &p); !ok {
		return err
	}

	cat := p.model()

	err := category.Create(s.db.WithContext(c.UserContext()), &cat)

	switch {
	case errors.Is(err, category.ErrCategoryExists):
		return conflict(c, err.Error())
	case errors.Is(err, category.ErrCategoryNameEmpty):
		return badRequest(c, err.Error())
	case err != nil:
		return serverError(c, err, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(cat)
}

// UpdateCategory changes a category.
func (s *Service) UpdateCategory(c *fiber.Ctx) error {
	var p CategoryPayload
	if ok, err := s.parse(c, &p); !ok {
		return err
	}

	cat, err := category.Update(s.db.WithContext(c.UserContext()), c.Params("id"), p.model())

	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return notFound(c, "Category not found")
	case errors.Is(err, category.ErrCategoryExists):
		return conflict(c, err.Error())
	case err != nil:
		return serverError(c, err, "Failed to update category")
	}

	return c.JSON(cat)
}

// DeleteCategory removes a category. Categories still used by media are kept.
func (s *Service) DeleteCategory(c *fiber.Ctx) error {
	db := s.db.WithContext(c.UserContext())

	used, err := media.ListByCategory(db, c.Params("id"))
	if err != nil {
		return serverError(c, err, "Failed to delete category")
	}

	if len(used) > 0 {
		return conflict(c, "Category is still used by media")
	}

	err = category.Delete(db, c.Params("id"))

	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return notFound(c, "Category not found")
	case err != nil:
		return serverError(c, err, "Failed to delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateMedia changes the editable fields of a media item.
func (s *Service) UpdateMedia(c *fiber.Ctx) error {
	var p MediaPayload
	if ok, err := s.parse(c, &p); !ok {
		return err
	}

	m, err := media.Update(s.db.WithContext(c.UserContext()), c.Params("id"), p.model())

	switch {
	case errors.Is(err, media.ErrMediaNotFound):
		return notFound(c, "Media not found")
	case errors.Is(err, media.ErrInvalidType), errors.Is(err, media.ErrTitleEmpty):
		return badRequest(c, err.Error())
	case err != nil:
		return serverError(c, err, "Failed to update media")
	}

	return c.JSON(m)
}

// DeleteMedia removes a media item.
func (s *Service) DeleteMedia(c *fiber.Ctx) error {
	err := media.Delete(s.db.WithContext(c.UserContext()), c.Params("id"))

	switch {
	case errors.Is(err, media.ErrMediaNotFound):
		return notFound(c, "Media not found")
	case err != nil:
		return serverError(c, err, "Failed to delete media")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListAllServices returns active and inactive services.
func (s *Service) ListAllServices(c *fiber.Ctx) error {
	services, err := service.List(s.db.WithContext(c.UserContext()))
	if err != nil {
		return serverError(c, err, "Failed to fetch services")
	}

	return c.JSON(services)
}

// CreateService adds a service.
func (s *Service) CreateService(c *fiber.Ctx) error {
	var p ServicePayload
	if ok, err := s.parse(c, &p); !ok {
		return err
	}

	svc := p.model()

	err := service.Create(s.db.WithContext(c.UserContext()), &svc)

	switch {
	case errors.Is(err, service.ErrServiceNameEmpty), errors.Is(err, service.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case err != nil:
		return serverError(c, err, "Failed to create service")
	}

	return c.Status(fiber.StatusCreated).JSON(svc)
}

// UpdateService replaces the fields of a service.
func (s *Service) UpdateService(c *fiber.Ctx) error {
	var p ServicePayload
	if ok, err := s.parse(c, &p); !ok {
		return err
	}

	svc, err := service.Update(s.db.WithContext(c.UserContext()), c.Params("id"), p.model())

	switch {
	case errors.Is(err, service.ErrServiceNotFound):
		return notFound(c, "Service not found")
	case err != nil:
		return serverError(c, err, "Failed to update service")
	}

	return c.JSON(svc)
}

// DeleteService removes a service.
func (s *Service) DeleteService(c *fiber.Ctx) error {
	err := service.Delete(s.db.WithContext(c.UserContext()), c.Params("id"))

	switch {
	case errors.Is(err, service.ErrServiceNotFound):
		return notFound(c, "Service not found")
	case err != nil:
		return serverError(c, err, "Failed to delete service")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateSettings writes the logo and the contact numbers, the page view counter is kept.
func (s *Service) UpdateSettings(c *fiber.Ctx) error {
	var p SettingsPayload
	if ok, err := s.parse(c, &p); !ok {
		return err
	}

	db := s.db.WithContext(c.UserContext())

	var saved *models.SystemSettings

	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := systemsettings.Get(tx)
		if err != nil {
			return err
		}

		if p.LogoURL != nil {
			current.LogoURL = p.LogoURL
		}

		if p.WhatsappNumbers != nil {
			current.WhatsappNumbers = models.StringList(p.WhatsappNumbers)
		}

		saved, err = systemsettings.Upsert(tx, current)

		return err
	})
	if err != nil {
		return serverError(c, err, "Failed to update settings")
	}

	return c.JSON(saved)
}
