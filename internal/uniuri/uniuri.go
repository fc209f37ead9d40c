package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen gives about 95 bits of entropy with StdChars.
	StdLen = 16
	// CredentialLen is the length of generated one-time passwords, about 190 bits with StdChars.
	CredentialLen = 32

	maxChars = 256
)

// StdChars is the default alphabet.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a random string of StdLen characters from StdChars.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// NewLen returns a random string of the given length from StdChars.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a random string of the given length drawn from chars.
// chars must hold between 2 and 256 symbols. Bytes that would bias the
// modulo are rejected and redrawn.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	n := len(chars)
	if n < 2 || n > maxChars {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// largest multiple of n that fits into a byte, values at or above it are biased
	limit := maxChars - maxChars%n

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2+1)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, chars[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
