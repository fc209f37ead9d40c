package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/auth"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Service is the login handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	localAuth *auth.LocalProvider
}

var _ handler.Service = (*Service)(nil)

// Handler is the login handler.
var Handler = Service{}

// Form is the submitted login form.
type Form struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, _ *auth.Gate) error {
	if app == nil || cfg == nil || db == nil {
		return ErrNilDependency
	}

	s.db = db
	s.cfg = cfg
	s.localAuth = auth.NewLocalProvider(db)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, s.page(""))
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return c.Render(TemplateName, s.page(ErrInvalidFormData.Error()))
	}

	user, err := s.localAuth.Authenticate(form.Email, form.Password)

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Info().Str("email", form.Email).Msg("login failed")
		return c.Render(TemplateName, s.page("Invalid email or password"))
	case errors.Is(err, auth.ErrPasswordRotationRequired):
		log.Warn().Str("email", form.Email).Msg("login refused until the password is reset")
		return c.Render(TemplateName, s.page("Your password must be reset by an administrator before you can log in"))
	case err != nil:
		log.Error().Err(err).Msg("failed to authenticate")
		return c.Render(TemplateName, s.page(ErrInternalServerError.Error()))
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return c.Render(TemplateName, s.page(ErrInternalServerError.Error()))
	}

	userSession := &session.Data{
		User: *user,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return c.Render(TemplateName, s.page(ErrInternalServerError.Error()))
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	log.Info().Str("user_id", user.ID).Msg("user logged in")

	return c.Redirect(handler.AdminHomePath)
}

func (s *Service) page(errMsg string) fiber.Map {
	m := fiber.Map{
		"Title": s.cfg.Title,
	}

	if errMsg != "" {
		m["error"] = errMsg
	}

	return m
}
