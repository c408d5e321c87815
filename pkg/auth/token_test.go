package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("orchestrator-1", "10.0.0.5", 3600, "secret-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := ParseToken(token, "secret-key")
	require.NoError(t, err)
	assert.Equal(t, "orchestrator-1", data.OrchestratorName)
	assert.Equal(t, "10.0.0.5", data.OrchestratorIP)
	assert.Greater(t, data.Expiration, int64(0))
}

func TestTokenWrongKey(t *testing.T) {
	token, err := CreateToken("orchestrator-1", "10.0.0.5", 3600, "secret-key")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-key")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	token, err := CreateToken("orchestrator-1", "10.0.0.5", -10, "secret-key")
	require.NoError(t, err)

	_, err = ParseToken(token, "secret-key")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "secret-key")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyLogin(t *testing.T) {
	// The login proof is the hash of the username concatenated with the
	// shared password.
	proof := CalculateHash("alice" + "shared-password")

	assert.True(t, VerifyLogin("alice", proof, "shared-password"))
	assert.False(t, VerifyLogin("bob", proof, "shared-password"))
	assert.False(t, VerifyLogin("alice", proof, "other-password"))
	assert.False(t, VerifyLogin("alice", "wrong-proof", "shared-password"))
}
