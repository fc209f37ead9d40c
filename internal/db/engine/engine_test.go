package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

func TestDialector(t *testing.T) {
	testCases := []struct {
		engine  string
		name    string
		wantErr bool
	}{
		{engine: config.EngineMySQL, name: "mysql"},
		{engine: config.EnginePostgres, name: "postgres"},
		{engine: config.EngineSQLite, name: "sqlite"},
		{engine: "", name: "sqlite"},
		{engine: "oracle", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.engine, func(t *testing.T) {
			d, err := Dialector(&config.Config{DB: config.DB{GormEngine: tc.engine, Path: "x.db"}})
			if tc.wantErr {
				require.ErrorIs(t, err, config.ErrUnknownGormEngine)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}
}

func TestOpenMemoryMigratesAndEnforcesForeignKeys(t *testing.T) {
	db, err := OpenMemory()
	require.NoError(t, err)

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}

	// uploaded_by points to a user that does not exist
	err = db.Create(&models.Media{
		Title:      "orphan",
		Type:       models.MediaTypeImage,
		FileURL:    "/uploads/orphan.png",
		FileName:   "orphan.png",
		UploadedBy: "missing-user",
	}).Error
	require.Error(t, err)
}
