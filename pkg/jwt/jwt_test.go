package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	sessionID := uuid.New()

	token, err := GenerateToken("u1", "sarah.mitchell@dayflow.com", "Sarah Mitchell", "admin", sessionID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "sarah.mitchell@dayflow.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestValidateGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTampered(t *testing.T) {
	token, err := GenerateToken("u1", "a@b.com", "A", "employee", uuid.New())
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
