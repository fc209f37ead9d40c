package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler/login"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler/logout"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/session"
)

// AdminPrefix is the path prefix of the pages that need a session.
const AdminPrefix = "/admin"

// publicPrefixes are never redirected. The api answers with status codes instead.
var publicPrefixes = []string{"/static", "/api", "/checkalive", "/metrics"}

// Middleware is a Fiber middleware that checks for user authentication.
func Middleware(c *fiber.Ctx) error {
	path := strings.ToLower(c.Path())

	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return c.Next()
		}
	}

	// Allow logout page without authentication
	if IsLogoutPage(c) {
		return c.Next()
	}

	sessData := new(session.Data)
	sessDataValid := sessData.Read(c.Cookies(session.CookieName)) == nil && sessData.User.ID != ""

	if IsLoginPage(c) {
		if sessDataValid {
			return c.Redirect(handler.AdminHomePath)
		}

		return c.Next()
	}

	if strings.HasPrefix(path, AdminPrefix) && !sessDataValid {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), login.Path)
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), logout.Path)
}
