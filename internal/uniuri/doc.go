// Package uniuri generates random strings from crypto/rand for one-time credentials and tokens.
package uniuri
