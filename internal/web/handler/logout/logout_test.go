package logout

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler/login"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/session"
)

func TestLogoutDeletesSession(t *testing.T) {
	session.Init(nil)

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, nil, nil))

	sid, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{User: models.User{ID: "u-1"}}).Write(sid, time.Minute))

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, Path, nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, login.Path, resp.Header.Get("Location"))
		assert.Contains(t, resp.Header.Get("Set-Cookie"), session.CookieName+"=;")
	}

	require.ErrorIs(t, new(session.Data).Read(sid), session.ErrNoSession)
}
