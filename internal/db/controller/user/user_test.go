package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/engine"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := engine.OpenMemory()
	require.NoError(t, err, "failed to create test database")

	return db
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Create(db, &models.User{
		Email:    "Admin@Example.com ",
		Password: models.HashPassword("secret"),
		Role:     models.RoleAdmin,
	}))

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		user          models.User
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			user:          models.User{Email: "a@b.c", Password: "x"},
			expectedError: ErrDBNil,
		},
		{
			name:          "empty email",
			dbParam:       db,
			user:          models.User{Email: "  ", Password: "x"},
			expectedError: ErrEmailEmpty,
		},
		{
			name:          "duplicate email ignores case",
			dbParam:       db,
			user:          models.User{Email: "admin@example.COM", Password: "x"},
			expectedError: ErrEmailExists,
		},
		{
			name:          "invalid role",
			dbParam:       db,
			user:          models.User{Email: "root@example.com", Password: "x", Role: "root"},
			expectedError: ErrInvalidRole,
		},
		{
			name:          "missing password",
			dbParam:       db,
			user:          models.User{Email: "nopass@example.com"},
			expectedError: ErrPasswordEmpty,
		},
		{
			name:    "visitor by default",
			dbParam: db,
			user:    models.User{Email: "visitor@example.com", Password: "x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.user

			err := Create(tc.dbParam, &u)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, u.ID)
			assert.Equal(t, models.RoleVisitor, u.Role)
		})
	}

	got, err := GetByEmail(db, "ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.True(t, got.IsAdmin())
}

func TestListAndRoles(t *testing.T) {
	db := setupTestDB(t)

	for _, u := range []models.User{
		{Email: "one@example.com", Password: "h", Role: models.RoleAdmin},
		{Email: "two@example.com", Password: "h"},
		{Email: "three@example.com", Password: "h"},
	} {
		require.NoError(t, Create(db, &u))
	}

	all, err := List(db)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	admins, err := ListByRole(db, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "one@example.com", admins[0].Email)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	u := models.User{Email: "jane@example.com", Password: "h"}
	require.NoError(t, Create(db, &u))
	require.NoError(t, Create(db, &models.User{Email: "taken@example.com", Password: "h"}))

	updated, err := Update(db, u.ID, models.User{FirstName: strPtr("Jane"), Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Jane", *updated.FirstName)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	_, err = Update(db, u.ID, models.User{Email: "taken@example.com"})
	require.ErrorIs(t, err, ErrEmailExists)

	_, err = Update(db, "missing", models.User{})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetPasswordClearsRotation(t *testing.T) {
	db := setupTestDB(t)

	u := models.User{Email: "restored@example.com", Password: "h", MustRotatePassword: true}
	require.NoError(t, Create(db, &u))

	require.NoError(t, SetPassword(db, u.ID, "n3w-passw0rd"))

	got, err := GetByID(db, u.ID)
	require.NoError(t, err)
	assert.False(t, got.MustRotatePassword)
	assert.True(t, got.VerifyPassword("n3w-passw0rd"))

	require.ErrorIs(t, SetPassword(db, u.ID, ""), ErrPasswordEmpty)
	require.ErrorIs(t, SetPassword(db, "missing", "x"), ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	u := models.User{Email: "gone@example.com", Password: "h"}
	require.NoError(t, Create(db, &u))

	require.NoError(t, Delete(db, u.ID))
	require.ErrorIs(t, Delete(db, u.ID), ErrUserNotFound)

	_, err := GetByID(db, u.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
