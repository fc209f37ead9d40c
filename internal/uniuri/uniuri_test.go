package uniuri

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Len(t, s, StdLen)

	for _, c := range []byte(s) {
		assert.True(t, bytes.IndexByte(StdChars, c) >= 0, "unexpected char %q", c)
	}
}

func TestNewLen(t *testing.T) {
	for _, n := range []int{0, 1, 7, CredentialLen, 500} {
		assert.Len(t, NewLen(n), n)
	}

	assert.Empty(t, NewLen(-3))
}

func TestNewLenCharsAlphabet(t *testing.T) {
	s := NewLenChars(200, []byte("ab"))
	assert.Len(t, s, 200)
	assert.Empty(t, bytes.Trim([]byte(s), "ab"))
}

func TestNewLenCharsPanicsOnBadAlphabet(t *testing.T) {
	assert.Panics(t, func() { NewLenChars(4, []byte("a")) })
	assert.Panics(t, func() { NewLenChars(4, make([]byte, 257)) })
}

func TestUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)

	for range 1000 {
		s := NewLen(CredentialLen)
		_, dup := seen[s]
		assert.False(t, dup)
		seen[s] = struct{}{}
	}
}
