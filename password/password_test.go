package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fastArgon2 = Argon2Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16}

func TestArgon2RoundTrip(t *testing.T) {
	h := NewArgon2(fastArgon2)

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := h.Verify(hash, "password123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(hash, "password124")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2SaltsDiffer(t *testing.T) {
	h := NewArgon2(fastArgon2)
	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	assert.NotEqual(t, a, b)
}

func TestArgon2RejectsMalformed(t *testing.T) {
	h := NewArgon2(fastArgon2)
	for _, bad := range []string{"", "plain", "$argon2i$v=19$m=1,t=1,p=1$aa$bb", "$argon2id$v=19$m=x$aa$bb"} {
		_, err := h.Verify(bad, "pw")
		assert.ErrorIs(t, err, ErrMalformedHash, bad)
	}
}

func TestBcrypt(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	ok, err := h.Verify(hash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(hash, "secret2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("  ", "secret1")
	assert.ErrorIs(t, err, ErrMalformedHash)
}
