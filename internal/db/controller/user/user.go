// Package user provides CRUD operations for user accounts.
package user

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailEmpty is returned when a user is created without an email.
	ErrEmailEmpty = errors.New("user email cannot be empty")
	// ErrEmailExists is returned when the email is already taken.
	ErrEmailExists = errors.New("user with email already exists")
	// ErrInvalidRole is returned for roles other than admin and visitor.
	ErrInvalidRole = errors.New("invalid user role")
	// ErrPasswordEmpty is returned when a password is set to an empty string.
	ErrPasswordEmpty = errors.New("password cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// List returns all users, newest first.
func List(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// ListByRole returns all users holding the role, newest first.
func ListByRole(db *gorm.DB, role models.Role) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	if err := db.Where("role = ?", role).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// GetByID retrieves a user by id.
func GetByID(db *gorm.DB, id string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	result := db.Where("id = ?", id).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &u, nil
}

// GetByEmail retrieves a user by email, the lookup ignores case.
func GetByEmail(db *gorm.DB, email string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	result := db.Where("email = ?", NormalizeEmail(email)).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &u, nil
}

// Create inserts a user. The password must already be hashed.
func Create(db *gorm.DB, u *models.User) error {
	if db == nil {
		return ErrDBNil
	}

	u.Email = NormalizeEmail(u.Email)
	if u.Email == "" {
		return ErrEmailEmpty
	}

	if u.Role == "" {
		u.Role = models.RoleVisitor
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	if u.Password == "" {
		return ErrPasswordEmpty
	}

	if _, err := GetByEmail(db, u.Email); err == nil {
		return ErrEmailExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	return db.Create(u).Error
}

// Update applies the non-empty profile fields of changes to the user with the given id.
func Update(db *gorm.DB, id string, changes models.User) (*models.User, error) {
	u, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if changes.Role != "" && !changes.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if email := NormalizeEmail(changes.Email); email != "" && email != u.Email {
		if _, err := GetByEmail(db, email); err == nil {
			return nil, ErrEmailExists
		}

		u.Email = email
	}

	if changes.FirstName != nil {
		u.FirstName = changes.FirstName
	}

	if changes.LastName != nil {
		u.LastName = changes.LastName
	}

	if changes.ProfileImageURL != nil {
		u.ProfileImageURL = changes.ProfileImageURL
	}

	if changes.Role != "" {
		u.Role = changes.Role
	}

	if err := db.Save(u).Error; err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword stores a new Argon2id hash for the user and clears the rotation flag.
func SetPassword(db *gorm.DB, id, password string) error {
	if db == nil {
		return ErrDBNil
	}

	if password == "" {
		return ErrPasswordEmpty
	}

	result := db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password":             models.HashPassword(password),
			"must_rotate_password": false,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete deletes a user by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
