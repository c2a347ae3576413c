package directory_test

import (
	"testing"

	directory "github.com/goliatone/go-directory"
	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("hashes a non empty password", func(t *testing.T) {
		hash, err := directory.HashPassword("secret1")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret1", hash)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		hash, err := directory.HashPassword("")
		assert.ErrorIs(t, err, directory.ErrNoEmptyString)
		assert.Empty(t, hash)
	})
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := directory.HashPassword("secret1")
	assert.NoError(t, err)

	t.Run("matches the original password", func(t *testing.T) {
		assert.NoError(t, directory.ComparePasswordAndHash("secret1", hash))
	})

	t.Run("rejects a different password", func(t *testing.T) {
		err := directory.ComparePasswordAndHash("not-the-password", hash)
		assert.ErrorIs(t, err, directory.ErrMismatchedHashAndPassword)
	})

	t.Run("rejects a mangled hash", func(t *testing.T) {
		err := directory.ComparePasswordAndHash("secret1", "not-a-bcrypt-hash")
		assert.Error(t, err)
	})
}
