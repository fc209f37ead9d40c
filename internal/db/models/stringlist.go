package models

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// StringList is an ordered list of strings.
// PostgreSQL stores it as a native text[] column, MySQL and SQLite as a JSON array.
type StringList []string

// GormDataType implements schema.GormDataTypeInterface.
func (StringList) GormDataType() string {
	return "stringlist"
}

// GormDBDataType implements migrator.GormDataTypeInterface.
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "text[]"
	case "mysql":
		return "json"
	default:
		return "text"
	}
}

// GormValue implements gorm.Valuer, it renders the list for the connected dialect.
func (l StringList) GormValue(_ context.Context, db *gorm.DB) clause.Expr {
	if db.Dialector.Name() == "postgres" {
		return clause.Expr{SQL: "?::text[]", Vars: []any{l.PostgresLiteral()}}
	}

	return clause.Expr{SQL: "?", Vars: []any{l.JSON()}}
}

// Value implements driver.Valuer with the JSON form.
func (l StringList) Value() (driver.Value, error) {
	return l.JSON(), nil
}

// Scan implements sql.Scanner. It accepts a JSON array or a PostgreSQL array literal.
func (l *StringList) Scan(value any) error {
	var raw string

	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("%w: %T", ErrStringListScan, value)
	}

	raw = strings.TrimSpace(raw)

	switch {
	case raw == "":
		*l = StringList{}
		return nil
	case strings.HasPrefix(raw, "{"):
		list, err := parsePostgresArray(raw)
		if err != nil {
			return err
		}

		*l = list

		return nil
	default:
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return fmt.Errorf("%w: %w", ErrStringListScan, err)
		}

		*l = StringList(list)
		if *l == nil {
			*l = StringList{}
		}

		return nil
	}
}

// OrEmpty returns the list, never nil.
func (l StringList) OrEmpty() StringList {
	if l == nil {
		return StringList{}
	}

	return l
}

// JSON returns the list as a JSON array, "[]" when empty.
func (l StringList) JSON() string {
	data, _ := json.Marshal([]string(l.OrEmpty())) //nolint:errchkjson // a string slice always marshals

	return string(data)
}

// PostgresLiteral returns the list in the PostgreSQL array input syntax, e.g. {"a","b"}.
func (l StringList) PostgresLiteral() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, s := range l {
		if i > 0 {
			sb.WriteByte(',')
		}

		sb.WriteByte('"')
		sb.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s))
		sb.WriteByte('"')
	}

	sb.WriteByte('}')

	return sb.String()
}

// parsePostgresArray parses a one dimensional text[] output value.
func parsePostgresArray(raw string) (StringList, error) {
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return nil, fmt.Errorf("%w: malformed array %q", ErrStringListScan, raw)
	}

	body := raw[1 : len(raw)-1]
	out := StringList{}

	if body == "" {
		return out, nil
	}

	var (
		cur     strings.Builder
		quoted  bool
		inQuote bool
		escaped bool
	)

	flush := func() {
		s := cur.String()
		// an unquoted NULL is a null element, it has no place in an ordered tag list
		if quoted || s != "NULL" {
			out = append(out, s)
		}

		cur.Reset()

		quoted = false
	}

	for i := 0; i < len(body); i++ {
		c := body[i]

		switch {
		case escaped:
			cur.WriteByte(c)

			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuote = !inQuote
			quoted = true
		case c == ',' && !inQuote:
			flush()
		default:
			cur.WriteByte(c)
		}
	}

	if inQuote || escaped {
		return nil, fmt.Errorf("%w: unterminated element in %q", ErrStringListScan, raw)
	}

	flush()

	return out, nil
}
