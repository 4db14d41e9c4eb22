package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("123456")
	require.NoError(t, err)
	second, err := hasher.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, "123456", first, "hash must not equal the input")
	assert.NotEqual(t, first, second, "salted hashing must not repeat")
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("123456")
	require.NoError(t, err)

	assert.NoError(t, verifier.Compare(hash, "123456"))
	assert.Error(t, verifier.Compare(hash, "wrongpassword"))
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	verifier := NewBcryptVerifier()

	// A malformed hash must report a mismatch, not panic.
	assert.Error(t, verifier.Compare("not-a-bcrypt-hash", "123456"))
	assert.Error(t, verifier.Compare("", "123456"))
}
