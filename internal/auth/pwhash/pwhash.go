// Package pwhash provides salted PBKDF2 password hashing for the shared
// dashboard secret.
package pwhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const keyLength = 32

// PasswordHasher hashes and validates passwords.
type PasswordHasher struct {
	saltSize   int
	iterations int
}

// New creates a new PasswordHasher.
func New(saltSize, iterations int) (*PasswordHasher, error) {
	if saltSize <= 0 {
		return nil, fmt.Errorf("salt size must be positive, got %d", saltSize)
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	return &PasswordHasher{
		saltSize:   saltSize,
		iterations: iterations,
	}, nil
}

// HashPassword returns "salt$key", both base64, derived with PBKDF2-SHA256.
func (ph *PasswordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, ph.saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("can't generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, ph.iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Validate reports whether password matches an encoded hash.
func (ph *PasswordHasher) Validate(password, hash string) error {
	parts := strings.SplitN(hash, "$", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed password hash")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return fmt.Errorf("can't decode salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("can't decode key: %w", err)
	}

	got := pbkdf2.Key([]byte(password), salt, ph.iterations, len(want), sha256.New)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return fmt.Errorf("password does not match")
	}
	return nil
}
