package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationToken(t *testing.T) {
	plaintext, hash, expiresAt, err := NewVerificationToken()
	require.NoError(t, err)

	assert.Len(t, plaintext, 40) // 20 random bytes, hex encoded
	assert.NotEqual(t, plaintext, hash)
	assert.Equal(t, HashVerificationToken(plaintext), hash)

	// Expiry sits at the TTL boundary, give or take scheduling slack.
	assert.WithinDuration(t, time.Now().Add(VerificationTokenTTL), expiresAt, 5*time.Second)
}

func TestVerificationTokensAreUnique(t *testing.T) {
	p1, _, _, err := NewVerificationToken()
	require.NoError(t, err)
	p2, _, _, err := NewVerificationToken()
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

func TestHashVerificationTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashVerificationToken("abc"), HashVerificationToken("abc"))
	assert.NotEqual(t, HashVerificationToken("abc"), HashVerificationToken("abd"))
}
