package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/user"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate authenticates a user by email and password.
func (p *LocalProvider) Authenticate(email, password string) (*models.User, error) {
	u, err := user.GetByEmail(p.db, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !u.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// checked after the password, so the flag does not reveal which emails exist
	if u.MustRotatePassword {
		return nil, ErrPasswordRotationRequired
	}

	return u, nil
}

// CreateAdmin creates an admin account, or promotes and resets the account that already uses the email.
func (p *LocalProvider) CreateAdmin(email, password, firstName, lastName string) (*models.User, error) {
	if password == "" {
		return nil, user.ErrPasswordEmpty
	}

	existing, err := user.GetByEmail(p.db, email)

	switch {
	case err == nil:
		if _, err = user.Update(p.db, existing.ID, models.User{Role: models.RoleAdmin}); err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}

		if err = user.SetPassword(p.db, existing.ID, password); err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		return user.GetByID(p.db, existing.ID)
	case !errors.Is(err, user.ErrUserNotFound):
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	u := &models.User{
		Email:    email,
		Password: models.HashPassword(password),
		Role:     models.RoleAdmin,
	}

	if firstName != "" {
		u.FirstName = &firstName
	}

	if lastName != "" {
		u.LastName = &lastName
	}

	if err := user.Create(p.db, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// ResetPassword sets a new password for the account with the email and clears the rotation flag.
func (p *LocalProvider) ResetPassword(email, password string) error {
	u, err := user.GetByEmail(p.db, email)
	if err != nil {
		return err
	}

	return user.SetPassword(p.db, u.ID, password)
}
