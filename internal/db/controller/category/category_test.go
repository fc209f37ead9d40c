package category

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

func TestCreateAndList(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		category      models.Category
		expectedError error
	}{
		{name: "nil database", category: models.Category{Name: "x"}, expectedError: ErrDBNil},
		{name: "empty name", dbParam: db, category: models.Category{Name: " "}, expectedError: ErrCategoryNameEmpty},
		{name: "nature", dbParam: db, category: models.Category{Name: "Nature", Color: strPtr("#22c55e")}},
		{name: "architecture", dbParam: db, category: models.Category{Name: "Architecture"}},
		{name: "duplicate", dbParam: db, category: models.Category{Name: "Nature"}, expectedError: ErrCategoryExists},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.category

			err := Create(tc.dbParam, &c)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, c.ID)
		})
	}

	list, err := List(db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Architecture", list[0].Name)
	assert.Equal(t, "Nature", list[1].Name)
}

func TestCreateKeepsGivenID(t *testing.T) {
	db := setupTestDB(t)

	c := models.Category{ID: "cat-1", Name: "Nature"}
	require.NoError(t, Create(db, &c))

	got, err := GetByID(db, "cat-1")
	require.NoError(t, err)
	assert.Equal(t, "Nature", got.Name)
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)

	c := models.Category{Name: "Nature"}
	require.NoError(t, Create(db, &c))
	require.NoError(t, Create(db, &models.Category{Name: "Urban"}))

	updated, err := Update(db, c.ID, models.Category{Description: strPtr("outdoor")})
	require.NoError(t, err)
	assert.Equal(t, "Nature", updated.Name)
	assert.Equal(t, "outdoor", *updated.Description)

	_, err = Update(db, c.ID, models.Category{Name: "Urban"})
	require.ErrorIs(t, err, ErrCategoryExists)

	require.NoError(t, Delete(db, c.ID))
	require.ErrorIs(t, Delete(db, c.ID), ErrCategoryNotFound)
}

func TestDeleteReferencedCategoryIsRejected(t *testing.T) {
	db := setupTestDB(t)

	u := models.User{Email: "admin@example.com", Password: "h", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&u).Error)

	c := models.Category{Name: "Nature"}
	require.NoError(t, Create(db, &c))

	require.NoError(t, db.Create(&models.Media{
		Title: "Forest", Type: models.MediaTypeImage, CategoryID: &c.ID,
		FileURL: "/uploads/forest.jpg", FileName: "forest.jpg", UploadedBy: u.ID,
	}).Error)

	require.Error(t, Delete(db, c.ID))
}
