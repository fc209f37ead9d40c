package backup

import (
	"strings"
	"time"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

const sqlNull = "NULL"

// Dialect renders literal values for one database engine.
type Dialect interface {
	// Label is the human readable engine name written into artifacts.
	Label() string
	// String quotes s as a string literal that stays on one line.
	String(s string) string
	// StringList renders an ordered list of strings.
	StringList(l models.StringList) string
	// Time renders a timestamp literal.
	Time(t time.Time) string
}

// DialectFor returns the dialect matching a gorm dialector name.
// Unknown names fall back to the SQLite rendering.
func DialectFor(name string) Dialect {
	switch name {
	case "postgres":
		return postgresDialect{}
	case "mysql":
		return mysqlDialect{}
	default:
		return sqliteDialect{}
	}
}

type postgresDialect struct{}

func (postgresDialect) Label() string { return "PostgreSQL" }

// String uses the E'' form as soon as a line break has to be escaped.
func (postgresDialect) String(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	}

	r := strings.NewReplacer(`\`, `\\`, `'`, `''`, "\n", `\n`, "\r", `\r`)

	return "E'" + r.Replace(s) + "'"
}

func (d postgresDialect) StringList(l models.StringList) string {
	if len(l) == 0 {
		return "ARRAY[]::text[]"
	}

	items := make([]string, len(l))
	for i, s := range l {
		items[i] = d.String(s)
	}

	return "ARRAY[" + strings.Join(items, ", ") + "]::text[]"
}

func (postgresDialect) Time(t time.Time) string {
	return "'" + t.UTC().Format("2006-01-02T15:04:05.000Z07:00") + "'"
}

type mysqlDialect struct{}

func (mysqlDialect) Label() string { return "MySQL" }

// String escapes backslashes too, MySQL treats them as escape characters by default.
func (mysqlDialect) String(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `''`, "\n", `\n`, "\r", `\r`, "\x00", `\0`)

	return "'" + r.Replace(s) + "'"
}

func (d mysqlDialect) StringList(l models.StringList) string {
	return d.String(l.JSON())
}

func (mysqlDialect) Time(t time.Time) string {
	return "'" + t.UTC().Format("2006-01-02 15:04:05.000") + "'"
}

type sqliteDialect struct{}

func (sqliteDialect) Label() string { return "SQLite" }

// String splices line breaks in with char(), SQLite string literals have no escapes.
func (sqliteDialect) String(s string) string {
	quote := func(part string) string {
		return "'" + strings.ReplaceAll(part, "'", "''") + "'"
	}

	if !strings.ContainsAny(s, "\r\n") {
		return quote(s)
	}

	var (
		parts []string
		start int
	)

	for i := 0; i < len(s); i++ {
		var code string

		switch s[i] {
		case '\n':
			code = "char(10)"
		case '\r':
			code = "char(13)"
		default:
			continue
		}

		if i > start {
			parts = append(parts, quote(s[start:i]))
		}

		parts = append(parts, code)
		start = i + 1
	}

	if start < len(s) {
		parts = append(parts, quote(s[start:]))
	}

	return "(" + strings.Join(parts, " || ") + ")"
}

func (d sqliteDialect) StringList(l models.StringList) string {
	return d.String(l.JSON())
}

// Time matches the layout the sqlite driver writes, so restored rows scan back as timestamps.
func (sqliteDialect) Time(t time.Time) string {
	return "'" + t.UTC().Format("2006-01-02 15:04:05.000-07:00") + "'"
}

func optString(d Dialect, s *string) string {
	if s == nil || *s == "" {
		return sqlNull
	}

	return d.String(*s)
}

func boolLiteral(b bool) string {
	if b {
		return "TRUE"
	}

	return "FALSE"
}
