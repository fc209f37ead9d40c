package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler/login"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/session"
)

func TestMiddleware(t *testing.T) {
	session.Init(nil)

	sid, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{User: models.User{ID: "u1", Email: "admin@x.com"}}).Write(sid, time.Minute))

	app := fiber.New()
	app.Use(Middleware)
	app.Use(func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	testCases := []struct {
		name     string
		path     string
		cookie   string
		status   int
		location string
	}{
		{name: "admin page without session", path: "/admin/backup", status: fiber.StatusFound, location: login.Path},
		{name: "admin page with unknown session", path: "/admin/backup", cookie: "nope", status: fiber.StatusFound, location: login.Path},
		{name: "admin page with session", path: "/admin/backup", cookie: sid, status: fiber.StatusOK},
		{name: "login without session", path: "/login", status: fiber.StatusOK},
		{name: "login with session", path: "/login", cookie: sid, status: fiber.StatusFound, location: handler.AdminHomePath},
		{name: "logout", path: "/logout", status: fiber.StatusOK},
		{name: "api is not redirected", path: "/api/admin/backup/export/sql", status: fiber.StatusOK},
		{name: "static", path: "/static/app.css", status: fiber.StatusOK},
		{name: "health check", path: "/checkalive", status: fiber.StatusOK},
		{name: "metrics", path: "/metrics", status: fiber.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tc.cookie})
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			_ = resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.location, resp.Header.Get(fiber.HeaderLocation))
		})
	}
}
