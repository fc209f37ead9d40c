package models

import (
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role is the access level of a user account.
type Role string

const (
	// RoleAdmin may use the admin area, including backup and restore.
	RoleAdmin Role = "admin"
	// RoleVisitor is a signed in user without admin rights.
	RoleVisitor Role = "visitor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleVisitor
}

// User represents a user account in the system.
type User struct {
	// ID is the unique identifier for the user (UUID string).
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Email is the unique login name of the user.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	// Password is the credential hash, Argon2id for accounts created here, bcrypt for imported ones.
	Password string `gorm:"size:255;not null" json:"-"`
	// FirstName is the user's first or given name.
	FirstName *string `gorm:"size:100" json:"firstName"`
	// LastName is the user's last or family name.
	LastName *string `gorm:"size:100" json:"lastName"`
	// ProfileImageURL points to the avatar of the user.
	ProfileImageURL *string `gorm:"size:512" json:"profileImageUrl"`
	// Role is either admin or visitor.
	Role Role `gorm:"type:varchar(20);not null;default:'visitor'" json:"role"`
	// MustRotatePassword blocks the login until an operator sets a new password.
	MustRotatePassword bool `gorm:"not null;default:false" json:"mustRotatePassword"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName implements schema.Tabler.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID to users created without an id.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}

	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating local user passwords.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the stored hash.
// Argon2id hashes and bcrypt hashes carried over from restored backups are both accepted.
func (u *User) VerifyPassword(password string) bool {
	if u.Password == "" {
		return false
	}

	if strings.HasPrefix(u.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}

	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
