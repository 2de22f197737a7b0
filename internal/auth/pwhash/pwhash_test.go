package pwhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndValidate(t *testing.T) {
	ph, err := New(16, 1000)
	assert.NoError(t, err)

	hash, err := ph.HashPassword("secret-password")
	assert.NoError(t, err)
	assert.Contains(t, hash, "$")

	assert.NoError(t, ph.Validate("secret-password", hash))
	assert.Error(t, ph.Validate("wrong-password", hash))

	// same password hashes differently every time (random salt)
	hash2, err := ph.HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
	assert.NoError(t, ph.Validate("secret-password", hash2))
}

func TestValidateMalformedHash(t *testing.T) {
	ph, err := New(16, 1000)
	assert.NoError(t, err)

	assert.Error(t, ph.Validate("pw", "no-dollar-sign"))
	assert.Error(t, ph.Validate("pw", "!!!$???"))
	assert.Error(t, ph.Validate("pw", strings.Repeat("$", 3)))
}

func TestNewRejectsBadParams(t *testing.T) {
	_, err := New(0, 1000)
	assert.Error(t, err)
	_, err = New(16, 0)
	assert.Error(t, err)
	_, err = New(-1, -1)
	assert.Error(t, err)
}
