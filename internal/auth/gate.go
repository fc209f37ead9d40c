package auth

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/user"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/session"
)

// LocalsUser is the fiber.Locals key of the authenticated *models.User.
const LocalsUser = "CurrentUser"

// Gate authorizes requests from the session cookie.
type Gate struct {
	db *gorm.DB
}

// NewGate creates a gate reading accounts from db.
func NewGate(db *gorm.DB) *Gate {
	return &Gate{db: db}
}

// CurrentUser returns the account of the session carried by the request.
// It fails with ErrUnauthenticated when there is no session or the account is gone.
func (g *Gate) CurrentUser(c *fiber.Ctx) (*models.User, error) {
	sessData := new(session.Data)
	if err := sessData.Read(c.Cookies(session.CookieName)); err != nil {
		return nil, ErrUnauthenticated
	}

	if sessData.User.ID == "" {
		return nil, ErrUnauthenticated
	}

	u, err := user.GetByID(g.db, sessData.User.ID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrUnauthenticated
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return u, nil
}

// Authorize returns the current user if it is an admin. Non admins are returned along with ErrForbidden.
func (g *Gate) Authorize(c *fiber.Ctx) (*models.User, error) {
	u, err := g.CurrentUser(c)
	if err != nil {
		return nil, err
	}

	if !u.IsAdmin() {
		return u, ErrForbidden
	}

	return u, nil
}

// RequireAdmin creates Fiber middleware that lets only admins pass.
func (g *Gate) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := g.Authorize(c)

		switch {
		case errors.Is(err, ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		case errors.Is(err, ErrForbidden):
			log.Warn().Str("user_id", u.ID).Str("path", c.Path()).Msg("non admin denied")

			return c.Status(fiber.StatusForbidden).SendString("Forbidden: Admin access required")
		case err != nil:
			log.Error().Err(err).Msg("failed to check admin access")

			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		c.Locals(LocalsUser, u)

		return c.Next()
	}
}

// UserFromLocals returns the user stored by RequireAdmin, or nil.
func UserFromLocals(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(LocalsUser).(*models.User)

	return u
}
