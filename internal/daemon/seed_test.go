package daemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/auth"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/user"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/engine"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

func TestSeedAdmin(t *testing.T) {
	db, err := engine.OpenMemory()
	require.NoError(t, err)

	cfg := &config.Config{Admin: config.Admin{Email: "Owner@Example.com", Password: "secret"}}

	require.NoError(t, SeedAdmin(cfg, db))

	u, err := auth.NewLocalProvider(db).Authenticate("owner@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)

	// a second start keeps the existing admin
	cfg.Admin.Password = "other"
	require.NoError(t, SeedAdmin(cfg, db))

	admins, err := user.ListByRole(db, models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestSeedAdminGeneratesPassword(t *testing.T) {
	db, err := engine.OpenMemory()
	require.NoError(t, err)

	require.NoError(t, SeedAdmin(&config.Config{Admin: config.Admin{Email: "admin@mediavault.local"}}, db))

	u, err := user.GetByEmail(db, "admin@mediavault.local")
	require.NoError(t, err)
	assert.NotEmpty(t, u.Password)
	assert.False(t, u.MustRotatePassword)
}

func TestSeedSamples(t *testing.T) {
	db, err := engine.OpenMemory()
	require.NoError(t, err)

	admin := models.User{Email: "admin@x.com", Password: models.HashPassword("pw"), Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	_, err = SeedSamples(db, nil)
	require.ErrorIs(t, err, user.ErrUserNotFound)

	res, err := SeedSamples(db, &admin)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Categories: 3, Media: 3, Services: 2, Settings: true}, res)

	var tagged int64
	require.NoError(t, db.Model(&models.Media{}).Where("uploaded_by = ?", admin.ID).Count(&tagged).Error)
	assert.EqualValues(t, 3, tagged)

	res, err = SeedSamples(db, &admin)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, res, "second run adds nothing")
}

func TestSessionStorageSQLite(t *testing.T) {
	assert.Nil(t, SessionStorage(&config.Config{DB: config.DB{GormEngine: config.EngineSQLite}}))
}
