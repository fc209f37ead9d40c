package backup

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

func TestProduceSnapshotEnvelope(t *testing.T) {
	db, svc := setupTestDB(t)
	seed(t, db)

	snap, err := svc.ProduceSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01T12:30:00.000Z", snap.Metadata.ExportDate)
	assert.Equal(t, "SQLite", snap.Metadata.Database)
	assert.Equal(t, SnapshotVersion, snap.Metadata.Version)

	d := snap.Data
	assert.Equal(t, len(d.Categories)+len(d.Users)+len(d.Media)+len(d.SystemSettings), snap.Metadata.TotalRecords)
	assert.Equal(t, 7, snap.Metadata.TotalRecords)
}

func TestProduceSnapshotRedactsCredentials(t *testing.T) {
	db, svc := setupTestDB(t)
	f := seed(t, db)

	snap, err := svc.ProduceSnapshot(context.Background())
	require.NoError(t, err)

	body, err := snap.Encode()
	require.NoError(t, err)

	assert.NotContains(t, string(body), f.admin.Password)
	assert.NotContains(t, string(body), f.visitor.Password)

	var raw struct {
		Data struct {
			Users []map[string]any `json:"users"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	require.Len(t, raw.Data.Users, 2)

	for _, u := range raw.Data.Users {
		assert.NotContains(t, u, "password")
		assert.NotContains(t, u, "credentialHash")
		assert.Contains(t, u, "email")
	}
}

func TestSnapshotEncodeEmptyStore(t *testing.T) {
	_, svc := setupTestDB(t)

	snap, err := svc.ProduceSnapshot(context.Background())
	require.NoError(t, err)

	body, err := snap.Encode()
	require.NoError(t, err)

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))

	for _, key := range []string{"categories", "users", "media", "systemSettings"} {
		assert.JSONEq(t, "[]", string(raw["data"][key]), key)
	}

	assert.JSONEq(t, "0", string(raw["metadata"]["totalRecords"]))
	assert.Contains(t, string(body), "\n  \"metadata\": {", "two space indentation")
}

func TestSnapshotEncodeFieldNames(t *testing.T) {
	db, svc := setupTestDB(t)
	seed(t, db)

	snap, err := svc.ProduceSnapshot(context.Background())
	require.NoError(t, err)

	body, err := snap.Encode()
	require.NoError(t, err)

	var raw struct {
		Data struct {
			Media          []map[string]any `json:"media"`
			SystemSettings []map[string]any `json:"systemSettings"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	require.Len(t, raw.Data.Media, 2)
	require.Len(t, raw.Data.SystemSettings, 1)

	for _, key := range []string{"id", "title", "type", "categoryId", "tags", "fileUrl", "fileName", "uploadedBy", "createdAt"} {
		assert.Contains(t, raw.Data.Media[0], key)
	}

	assert.Equal(t, []any{"sunset", "it's warm"}, raw.Data.Media[0]["tags"])
	assert.Equal(t, []any{}, raw.Data.Media[1]["tags"])
	assert.InDelta(t, 42, raw.Data.SystemSettings[0]["pageViews"], 0)
	assert.Equal(t, models.SystemSettingsID, raw.Data.SystemSettings[0]["id"])
}

func TestRedact(t *testing.T) {
	u := models.User{ID: "u1", Email: "a@x.com", Password: "hash", Role: models.RoleAdmin, FirstName: strPtr("Ada")}

	rec := Redact(u)
	assert.Equal(t, "u1", rec.ID)
	assert.Equal(t, "a@x.com", rec.Email)
	assert.Equal(t, models.RoleAdmin, rec.Role)
	assert.Equal(t, "Ada", *rec.FirstName)
}
