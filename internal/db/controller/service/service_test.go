package service

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

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		service       models.Service
		expectedError error
		wantStatus    models.ServiceStatus
	}{
		{name: "nil database", service: models.Service{Name: "x"}, expectedError: ErrDBNil},
		{name: "empty name", dbParam: db, service: models.Service{}, expectedError: ErrServiceNameEmpty},
		{
			name: "invalid status", dbParam: db,
			service:       models.Service{Name: "Editing", Status: "paused"},
			expectedError: ErrInvalidStatus,
		},
		{
			name: "active by default", dbParam: db,
			service:    models.Service{Name: "Video editing", Category: "video", Description: "Cut and grade", Price: "R$ 500"},
			wantStatus: models.ServiceStatusActive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.service

			err := Create(tc.dbParam, &s)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, s.Status)
			assert.Equal(t, models.StringList{}, s.Technologies)
		})
	}
}

func TestListActive(t *testing.T) {
	db := setupTestDB(t)

	for _, s := range []models.Service{
		{Name: "Web design", Category: "web", Description: "d", Price: "1", Technologies: models.StringList{"go", "htmx"}},
		{Name: "Animation", Category: "video", Description: "d", Price: "2"},
		{Name: "Print", Category: "print", Description: "d", Price: "3", Status: models.ServiceStatusInactive},
	} {
		require.NoError(t, Create(db, &s))
	}

	all, err := List(db)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := ListActive(db)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Animation", active[0].Name)
	assert.Equal(t, "Web design", active[1].Name)
	assert.Equal(t, models.StringList{"go", "htmx"}, active[1].Technologies)
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)

	s := models.Service{Name: "Photography", Category: "photo", Description: "d", Price: "10"}
	require.NoError(t, Create(db, &s))

	updated, err := Update(db, s.ID, models.Service{Status: models.ServiceStatusInactive, Price: "12"})
	require.NoError(t, err)
	assert.Equal(t, models.ServiceStatusInactive, updated.Status)
	assert.Equal(t, "12", updated.Price)
	assert.Equal(t, "Photography", updated.Name)

	_, err = Update(db, s.ID, models.Service{Status: "paused"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	require.NoError(t, Delete(db, s.ID))
	require.ErrorIs(t, Delete(db, s.ID), ErrServiceNotFound)
}
