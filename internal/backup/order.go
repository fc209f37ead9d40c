package backup

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

// Dataset is every backed up row, read in one transaction.
type Dataset struct {
	Categories []models.Category
	Users      []models.User
	Media      []models.Media
	Settings   []models.SystemSettings
}

// Records returns the number of rows across all tables.
func (d *Dataset) Records() int {
	total := 0
	for _, e := range Order {
		total += e.count(d)
	}

	return total
}

// Entity describes one backed up table.
type Entity struct {
	// Name is the key of the table in the snapshot data section.
	Name string
	// Title heads the table section of a SQL script.
	Title string
	// Table is the SQL table name.
	Table string
	// Columns are the columns written by script inserts, in order.
	Columns []string

	load  func(tx *gorm.DB, d *Dataset) error
	count func(d *Dataset) int
	rows  func(d *Dataset, dl Dialect) [][]string
	purge func(tx *gorm.DB) error
}

// Order lists the tables so that every table follows the tables it references.
// Inserts walk it forwards, deletes backwards.
var Order = []Entity{ //nolint:gochecknoglobals
	{
		Name:    "categories",
		Title:   "Categories",
		Table:   models.Category{}.TableName(),
		Columns: []string{"id", "name", "description", "color", "created_at", "updated_at"},
		load: func(tx *gorm.DB, d *Dataset) error {
			return tx.Order("created_at ASC, id ASC").Find(&d.Categories).Error
		},
		count: func(d *Dataset) int { return len(d.Categories) },
		rows: func(d *Dataset, dl Dialect) [][]string {
			out := make([][]string, 0, len(d.Categories))
			for _, c := range d.Categories {
				out = append(out, []string{
					dl.String(c.ID), dl.String(c.Name), optString(dl, c.Description), optString(dl, c.Color),
					dl.Time(c.CreatedAt), dl.Time(c.UpdatedAt),
				})
			}

			return out
		},
		purge: func(tx *gorm.DB) error {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Category{}).Error
		},
	},
	{
		Name:  "users",
		Title: "Users",
		Table: models.User{}.TableName(),
		Columns: []string{
			"id", "email", "password", "first_name", "last_name", "profile_image_url", "role",
			"must_rotate_password", "created_at", "updated_at",
		},
		load: func(tx *gorm.DB, d *Dataset) error {
			return tx.Order("created_at ASC, id ASC").Find(&d.Users).Error
		},
		count: func(d *Dataset) int { return len(d.Users) },
		rows: func(d *Dataset, dl Dialect) [][]string {
			out := make([][]string, 0, len(d.Users))
			for _, u := range d.Users {
				out = append(out, []string{
					dl.String(u.ID), dl.String(u.Email), dl.String(u.Password),
					optString(dl, u.FirstName), optString(dl, u.LastName), optString(dl, u.ProfileImageURL),
					dl.String(string(u.Role)), boolLiteral(u.MustRotatePassword),
					dl.Time(u.CreatedAt), dl.Time(u.UpdatedAt),
				})
			}

			return out
		},
		// admins survive a restore so the operator keeps access
		purge: func(tx *gorm.DB) error {
			return tx.Where("role <> ?", models.RoleAdmin).Delete(&models.User{}).Error
		},
	},
	{
		Name:  "media",
		Title: "Media",
		Table: models.Media{}.TableName(),
		Columns: []string{
			"id", "title", "description", "type", "category_id", "tags", "file_url", "thumbnail_url",
			"file_name", "file_size", "mime_type", "uploaded_by", "created_at", "updated_at",
		},
		load: func(tx *gorm.DB, d *Dataset) error {
			return tx.Order("created_at ASC, id ASC").Find(&d.Media).Error
		},
		count: func(d *Dataset) int { return len(d.Media) },
		rows: func(d *Dataset, dl Dialect) [][]string {
			out := make([][]string, 0, len(d.Media))
			for _, m := range d.Media {
				out = append(out, []string{
					dl.String(m.ID), dl.String(m.Title), optString(dl, m.Description), dl.String(string(m.Type)),
					optString(dl, m.CategoryID), dl.StringList(m.Tags), dl.String(m.FileURL),
					optString(dl, m.ThumbnailURL), dl.String(m.FileName), optString(dl, m.FileSize),
					optString(dl, m.MimeType), dl.String(m.UploadedBy), dl.Time(m.CreatedAt), dl.Time(m.UpdatedAt),
				})
			}

			return out
		},
		purge: func(tx *gorm.DB) error {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Media{}).Error
		},
	},
	{
		Name:    "systemSettings",
		Title:   "System Settings",
		Table:   models.SystemSettings{}.TableName(),
		Columns: []string{"id", "logo_url", "page_views", "whatsapp_numbers", "updated_at"},
		load: func(tx *gorm.DB, d *Dataset) error {
			return tx.Order("id ASC").Find(&d.Settings).Error
		},
		count: func(d *Dataset) int { return len(d.Settings) },
		rows: func(d *Dataset, dl Dialect) [][]string {
			out := make([][]string, 0, len(d.Settings))
			for _, s := range d.Settings {
				out = append(out, []string{
					dl.String(s.ID), optString(dl, s.LogoURL), strconv.FormatInt(s.PageViews, 10),
					dl.StringList(s.WhatsappNumbers), dl.Time(s.UpdatedAt),
				})
			}

			return out
		},
		purge: func(tx *gorm.DB) error {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.SystemSettings{}).Error
		},
	},
}

// load reads every table of Order into a dataset.
func load(tx *gorm.DB) (*Dataset, error) {
	d := &Dataset{}

	for _, e := range Order {
		if err := e.load(tx, d); err != nil {
			return nil, err
		}
	}

	d.normalize()

	return d, nil
}

// normalize replaces nil slices, so empty tables and lists encode as [].
func (d *Dataset) normalize() {
	if d.Categories == nil {
		d.Categories = []models.Category{}
	}

	if d.Users == nil {
		d.Users = []models.User{}
	}

	if d.Media == nil {
		d.Media = []models.Media{}
	}

	if d.Settings == nil {
		d.Settings = []models.SystemSettings{}
	}

	for i := range d.Media {
		d.Media[i].Tags = d.Media[i].Tags.OrEmpty()
	}

	for i := range d.Settings {
		d.Settings[i].WhatsappNumbers = d.Settings[i].WhatsappNumbers.OrEmpty()
	}
}
