// Package backup serves the backup page, the export downloads and the restore upload of the admin area.
package backup

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/auth"
	dbbackup "github.com/MediaVault-Admin/MediaVault-Admin/internal/backup"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/handler"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/web/navigation"
)

const (
	// Path is the path of the backup page.
	Path = handler.AdminHomePath

	// APIPath is the route group of the export and restore endpoints.
	APIPath = "/api/admin/backup"

	// TemplateName is the name of the backup page template.
	TemplateName = "admin/backup"

	// FormField is the multipart field carrying an uploaded backup file.
	FormField = "file"

	msgExportFailed   = "Failed to export database"
	msgRestoreFailed  = "Failed to restore database"
	msgRestored       = "Database restored successfully"
	msgNoFile         = "No backup file provided"
	msgUnreadableFile = "Failed to read the uploaded file"
)

// Service is the backup handler service.
type Service struct {
	cfg    *config.Config
	db     *gorm.DB
	backup *dbbackup.Service
	// now is replaced in tests
	now func() time.Time
}

var _ handler.Service = (*Service)(nil)

// Handler is the backup handler.
var Handler = Service{}

// errNoFile is returned when a restore request has neither a file nor a body.
var errNoFile = errors.New(msgNoFile)

// Init initializes the backup handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, gate *auth.Gate) error {
	if app == nil || cfg == nil || db == nil || gate == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.backup = dbbackup.NewService(db)

	if s.now == nil {
		s.now = time.Now
	}

	app.Get(Path, gate.RequireAdmin(), s.Page)

	app.Route(APIPath, func(router fiber.Router) {
		router.Use(gate.RequireAdmin())
		router.Get("/export/sql", s.ExportSQL)
		router.Get("/export/json", s.ExportJSON)
		router.Post("/restore", s.Restore)
	})

	return nil
}

// Stats are the row counts shown on the backup page.
type Stats struct {
	Categories int64
	Users      int64
	Media      int64
	Services   int64
}

// Page renders the backup page.
func (s *Service) Page(c *fiber.Ctx) error {
	var stats Stats

	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.Category{}, &stats.Categories},
		{&models.User{}, &stats.Users},
		{&models.Media{}, &stats.Media},
		{&models.Service{}, &stats.Services},
	}

	for _, cnt := range counts {
		if err := s.db.WithContext(c.UserContext()).Model(cnt.model).Count(cnt.dst).Error; err != nil {
			log.Error().Err(err).Msg("failed to count rows for the backup page")
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":         s.cfg.Title,
		"Navigation":    navigation.Admin("Backup & Restore", navigation.PageBackup, Path),
		"CurrentUser":   auth.UserFromLocals(c),
		"Stats":         stats,
		"Database":      s.backup.Dialect().Label(),
		"MaxUploadSize": s.cfg.Backup.MaxUploadSizeMB,
	}, handler.BaseLayout)
}

// ExportSQL downloads the SQL script.
func (s *Service) ExportSQL(c *fiber.Ctx) error {
	script, err := s.backup.ProduceScript(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("sql export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": msgExportFailed})
	}

	c.Attachment(s.filename("sql"))
	c.Set(fiber.HeaderContentType, "application/sql; charset=utf-8")

	return c.Send(script)
}

// ExportJSON downloads the snapshot document.
func (s *Service) ExportJSON(c *fiber.Ctx) error {
	snap, err := s.backup.ProduceSnapshot(c.UserContext())
	if err != nil {
		log.Error().Err(err).Msg("json export failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": msgExportFailed})
	}

	body, err := snap.Encode()
	if err != nil {
		log.Error().Err(err).Msg("failed to encode snapshot")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": msgExportFailed})
	}

	c.Attachment(s.filename("json"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	return c.Send(body)
}

// Restore replaces the dataset with an uploaded snapshot.
func (s *Service) Restore(c *fiber.Ctx) error {
	name, body, err := s.upload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	restored, err := s.backup.Restore(c.UserContext(), name, body)

	switch {
	case dbbackup.IsClientError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case err != nil:
		log.Error().Err(err).Str("file", name).Msg("restore failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": msgRestoreFailed})
	}

	log.Info().
		Str("user_id", userID(c)).
		Str("file", name).
		Int("records", restored).
		Msg("database restored from upload")

	return c.JSON(fiber.Map{
		"message":         msgRestored,
		"recordsRestored": restored,
	})
}

// upload returns the multipart file, or the raw request body of a non-multipart request.
func (s *Service) upload(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile(FormField)
	if err != nil {
		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			return "", nil, errNoFile
		}

		if body := c.Body(); len(body) > 0 {
			return "", body, nil
		}

		return "", nil, errNoFile
	}

	f, err := fh.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")
		return "", nil, errors.New(msgUnreadableFile)
	}

	defer func() {
		_ = f.Close()
	}()

	body, err := io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")
		return "", nil, errors.New(msgUnreadableFile)
	}

	if len(body) == 0 {
		return "", nil, errNoFile
	}

	return fh.Filename, body, nil
}

// filename is the download name, e.g. database-backup-2025-06-01.sql.
func (s *Service) filename(ext string) string {
	prefix := s.cfg.Backup.FilenamePrefix
	if prefix == "" {
		prefix = config.DefaultFilenamePrefix
	}

	return fmt.Sprintf("%s-%s.%s", prefix, s.now().Format(time.DateOnly), ext)
}

func userID(c *fiber.Ctx) string {
	if u := auth.UserFromLocals(c); u != nil {
		return u.ID
	}

	return ""
}
