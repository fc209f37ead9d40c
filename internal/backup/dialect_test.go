package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

func TestDialectFor(t *testing.T) {
	assert.Equal(t, "PostgreSQL", DialectFor("postgres").Label())
	assert.Equal(t, "MySQL", DialectFor("mysql").Label())
	assert.Equal(t, "SQLite", DialectFor("sqlite").Label())
	assert.Equal(t, "SQLite", DialectFor("something-else").Label())
}

func TestDialectString(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		in      string
		want    string
	}{
		{"postgres plain", postgresDialect{}, "Nature", "'Nature'"},
		{"postgres quote", postgresDialect{}, "it's", "'it''s'"},
		{"postgres backslash kept", postgresDialect{}, `C:\media`, `'C:\media'`},
		{"postgres newline", postgresDialect{}, "a\nb\\c", `E'a\nb\\c'`},
		{"mysql quote", mysqlDialect{}, "it's", "'it''s'"},
		{"mysql backslash", mysqlDialect{}, `C:\media`, `'C:\\media'`},
		{"mysql newline", mysqlDialect{}, "a\r\nb", `'a\r\nb'`},
		{"sqlite quote", sqliteDialect{}, "it's", "'it''s'"},
		{"sqlite backslash kept", sqliteDialect{}, `C:\media`, `'C:\media'`},
		{"sqlite newline", sqliteDialect{}, "a\nb", "('a' || char(10) || 'b')"},
		{"sqlite leading newline", sqliteDialect{}, "\nb'", "(char(10) || 'b''')"},
		{"empty", sqliteDialect{}, "", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dialect.String(tt.in))
		})
	}
}

func TestDialectStringList(t *testing.T) {
	tags := models.StringList{"a", "it's"}

	assert.Equal(t, "ARRAY['a', 'it''s']::text[]", postgresDialect{}.StringList(tags))
	assert.Equal(t, "ARRAY[]::text[]", postgresDialect{}.StringList(nil))
	assert.Equal(t, `'["a","it''s"]'`, mysqlDialect{}.StringList(tags))
	assert.Equal(t, "'[]'", sqliteDialect{}.StringList(models.StringList{}))
}

func TestDialectTime(t *testing.T) {
	ts := time.Date(2025, 1, 2, 4, 4, 5, 123456789, time.FixedZone("CET", 3600))

	assert.Equal(t, "'2025-01-02T03:04:05.123Z'", postgresDialect{}.Time(ts))
	assert.Equal(t, "'2025-01-02 03:04:05.123'", mysqlDialect{}.Time(ts))
	assert.Equal(t, "'2025-01-02 03:04:05.123+00:00'", sqliteDialect{}.Time(ts))
}

func TestOptString(t *testing.T) {
	d := postgresDialect{}

	assert.Equal(t, "NULL", optString(d, nil))
	assert.Equal(t, "NULL", optString(d, strPtr("")))
	assert.Equal(t, "'x'", optString(d, strPtr("x")))
}
