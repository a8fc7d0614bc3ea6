package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "savor/internal/domain/errors"
	"savor/internal/errors"
)

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=10,p=1$"))

	assert.True(t, hasher.Verify(hash, "correct horse battery staple"))
	assert.False(t, hasher.Verify(hash, "wrong password"))
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("same secret")
	require.NoError(t, err)
	second, err := hasher.Hash("same secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(first, "same secret"))
	assert.True(t, hasher.Verify(second, "same secret"))
}

func TestArgon2Hasher_EmptySecretRejected(t *testing.T) {
	hasher := NewArgon2Hasher()

	_, err := hasher.Hash("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestArgon2Hasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	assert.False(t, hasher.Verify("", "secret"))
	assert.False(t, hasher.Verify("not-a-hash", "secret"))
	assert.False(t, hasher.Verify("$argon2id$v=19$m=65536,t=10,p=1$bad!salt$bad!key", "secret"))
	assert.False(t, hasher.Verify("$bcrypt$whatever", "secret"))
}
