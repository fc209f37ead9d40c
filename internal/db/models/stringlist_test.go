package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	testCases := []struct {
		name    string
		value   any
		want    StringList
		wantErr bool
	}{
		{name: "nil", value: nil, want: StringList{}},
		{name: "empty string", value: "", want: StringList{}},
		{name: "json bytes", value: []byte(`["a","b c"]`), want: StringList{"a", "b c"}},
		{name: "json null", value: "null", want: StringList{}},
		{name: "postgres empty", value: "{}", want: StringList{}},
		{name: "postgres plain", value: "{nature,sunset}", want: StringList{"nature", "sunset"}},
		{name: "postgres quoted", value: `{"a,b","say \"hi\"","back\\slash"}`, want: StringList{"a,b", `say "hi"`, `back\slash`}},
		{name: "postgres null element", value: `{a,NULL,"NULL"}`, want: StringList{"a", "NULL"}},
		{name: "postgres unterminated", value: `{"a}`, wantErr: true},
		{name: "broken json", value: `["a"`, wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var l StringList

			err := l.Scan(tc.value)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrStringListScan)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, l)
		})
	}
}

func TestStringListLiterals(t *testing.T) {
	l := StringList{"a,b", `say "hi"`, `back\slash`}

	assert.Equal(t, `{"a,b","say \"hi\"","back\\slash"}`, l.PostgresLiteral())
	assert.Equal(t, `["a,b","say \"hi\"","back\\slash"]`, l.JSON())

	var nilList StringList
	assert.Equal(t, "{}", nilList.PostgresLiteral())
	assert.Equal(t, "[]", nilList.JSON())

	// the postgres literal scans back to the same list
	var back StringList
	require.NoError(t, back.Scan(l.PostgresLiteral()))
	assert.Equal(t, l, back)
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"x"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, v)
}
