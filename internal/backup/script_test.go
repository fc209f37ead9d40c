package backup

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/engine"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

func TestProduceScriptLayout(t *testing.T) {
	db, svc := setupTestDB(t)
	seed(t, db)

	script, err := svc.ProduceScript(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(script), "\n"), "\n")

	assert.Equal(t, "-- Database Export", lines[0])
	assert.Equal(t, "-- Generated: 2025-06-01T12:30:00.000Z", lines[1])
	assert.Equal(t, "-- Database: SQLite", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "-- WARNING"))
	assert.Equal(t, "-- Export completed successfully", lines[len(lines)-2])
	assert.Equal(t, "-- Total records: 7", lines[len(lines)-1])

	text := string(script)
	assert.Contains(t, text, "-- Categories (2 records)")
	assert.Contains(t, text, "-- Users (2 records)")
	assert.Contains(t, text, "-- Media (2 records)")
	assert.Contains(t, text, "-- System Settings (1 records)")

	// deletes walk the order backwards
	deletes := []string{
		"DELETE FROM system_settings;", "DELETE FROM media;", "DELETE FROM users;", "DELETE FROM categories;",
	}
	last := -1

	for _, stmt := range deletes {
		idx := strings.Index(text, stmt)
		require.NotEqual(t, -1, idx, stmt)
		assert.Greater(t, idx, last, stmt)

		last = idx
	}

	// inserts walk it forwards and come after every delete
	inserts := []string{
		"INSERT INTO categories ", "INSERT INTO users ", "INSERT INTO media ", "INSERT INTO system_settings ",
	}

	for _, stmt := range inserts {
		idx := strings.Index(text, stmt)
		require.NotEqual(t, -1, idx, stmt)
		assert.Greater(t, idx, last, stmt)

		last = idx
	}
}

func TestProduceScriptEscaping(t *testing.T) {
	db, svc := setupTestDB(t)
	seed(t, db)

	script, err := svc.ProduceScript(context.Background())
	require.NoError(t, err)

	text := string(script)
	assert.Contains(t, text, "'City''s best'")
	assert.Contains(t, text, "('line one' || char(10) || 'line two')")
	assert.Contains(t, text, `'["sunset","it''s warm"]'`)
	assert.Contains(t, text, "'[]'")

	for _, line := range strings.Split(text, "\n") {
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		assert.True(t, strings.HasSuffix(line, ";"), "every statement sits on its own line: %s", line)
	}
}

func TestProduceScriptEmptyStore(t *testing.T) {
	_, svc := setupTestDB(t)

	script, err := svc.ProduceScript(context.Background())
	require.NoError(t, err)

	text := string(script)
	assert.Contains(t, text, "-- Categories (0 records)")
	assert.Contains(t, text, "-- Total records: 0")
	assert.NotContains(t, text, "INSERT INTO")
}

// The script is meant to be replayed with the engine's own client. Replaying it statement by
// statement into an empty SQLite database must recreate the dataset.
func TestProduceScriptReplaysIntoSQLite(t *testing.T) {
	db, svc := setupTestDB(t)
	f := seed(t, db)

	script, err := svc.ProduceScript(context.Background())
	require.NoError(t, err)

	target, err := engine.OpenMemory()
	require.NoError(t, err)

	for _, line := range strings.Split(string(script), "\n") {
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}

		require.NoError(t, target.Exec(line).Error, line)
	}

	assert.Equal(t, categoriesOf(t, db), categoriesOf(t, target))
	assert.Equal(t, mediaOf(t, db), mediaOf(t, target))
	assert.Equal(t, settingsOf(t, db), settingsOf(t, target))
	assert.Equal(t, emailsOf(t, db), emailsOf(t, target))

	// the script keeps the credential hashes, unlike the snapshot
	var admin models.User
	require.NoError(t, target.Where("id = ?", f.admin.ID).First(&admin).Error)
	assert.True(t, admin.VerifyPassword("admin-secret"))
	assert.Equal(t, f.admin.CreatedAt.UTC(), admin.CreatedAt.UTC())
}

func TestProduceScriptCancelled(t *testing.T) {
	_, svc := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ProduceScript(ctx)
	require.ErrorIs(t, err, ErrExportFailed)
}
