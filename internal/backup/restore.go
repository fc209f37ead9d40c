package backup

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/systemsettings"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/user"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/uniuri"
)

// restoreRun carries the state of one snapshot restore.
type restoreRun struct {
	tx  *gorm.DB
	now time.Time
	// userIDs maps snapshot user ids to the ids of accounts that were kept instead
	userIDs  map[string]string
	restored int
}

// apply replaces the dataset inside tx with the document rows.
func (r *restoreRun) apply(data *DocumentData) error {
	for i := len(Order) - 1; i >= 0; i-- {
		if err := Order[i].purge(r.tx); err != nil {
			return fmt.Errorf("clear %s: %w", Order[i].Table, err)
		}
	}

	steps := []struct {
		table string
		run   func() error
	}{
		{models.Category{}.TableName(), func() error { return r.categories(data.Categories) }},
		{models.User{}.TableName(), func() error { return r.users(data.Users) }},
		{models.Media{}.TableName(), func() error { return r.media(data.Media) }},
		{models.SystemSettings{}.TableName(), func() error { return r.settings(data.SystemSettings) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("insert %s: %w", step.table, err)
		}
	}

	return nil
}

func (r *restoreRun) categories(rows []models.Category) error {
	for _, c := range rows {
		r.stamp(&c.CreatedAt, &c.UpdatedAt)

		if err := r.tx.Create(&c).Error; err != nil {
			return err
		}

		r.restored++
	}

	return nil
}

// users inserts the accounts whose email is still free. A taken email keeps the existing account
// and its id replaces the snapshot id in media references. Accounts without a credential in the
// document get a random one and must rotate it before the next login.
func (r *restoreRun) users(rows []UserInput) error {
	for _, in := range rows {
		existing, err := user.GetByEmail(r.tx, in.Email)
		if err == nil {
			r.userIDs[in.ID] = existing.ID
			continue
		}

		if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}

		u := models.User{
			ID:              in.ID,
			Email:           user.NormalizeEmail(in.Email),
			FirstName:       in.FirstName,
			LastName:        in.LastName,
			ProfileImageURL: in.ProfileImageURL,
			Role:            in.Role,
			CreatedAt:       in.CreatedAt,
			UpdatedAt:       in.UpdatedAt,
		}

		if u.Role == "" {
			u.Role = models.RoleVisitor
		}

		if hash := in.credential(); hash != "" {
			u.Password = hash
		} else {
			u.Password = models.HashPassword(uniuri.NewLen(uniuri.CredentialLen))
			u.MustRotatePassword = true
		}

		r.stamp(&u.CreatedAt, &u.UpdatedAt)

		if err := r.tx.Create(&u).Error; err != nil {
			return err
		}

		r.restored++
	}

	return nil
}

func (r *restoreRun) media(rows []models.Media) error {
	for _, m := range rows {
		if id, ok := r.userIDs[m.UploadedBy]; ok {
			m.UploadedBy = id
		}

		m.Tags = m.Tags.OrEmpty()
		r.stamp(&m.CreatedAt, &m.UpdatedAt)

		if err := r.tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}

		r.restored++
	}

	return nil
}

// settings writes every row over the single settings row, the last one wins.
func (r *restoreRun) settings(rows []models.SystemSettings) error {
	for _, s := range rows {
		var created time.Time
		r.stamp(&created, &s.UpdatedAt)

		if _, err := systemsettings.Upsert(r.tx, &s); err != nil {
			return err
		}

		r.restored++
	}

	return nil
}

// stamp fills missing timestamps with the restore time.
func (r *restoreRun) stamp(created, updated *time.Time) {
	if created.IsZero() {
		*created = r.now
	}

	if updated.IsZero() {
		*updated = *created
	}
}
