package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/common"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	tok, err := GenerateToken("user-123", secret, time.Hour)
	require.NoError(t, err)

	got, err := GetUserIDFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestGetUserIDFromToken_Failures(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	expired, err := GenerateToken("u1", secret, -time.Second)
	require.NoError(t, err)
	valid, err := GenerateToken("u1", secret, time.Hour)
	require.NoError(t, err)
	noUser, err := GenerateToken("", secret, time.Hour)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{"expired", expired, secret},
		{"wrong secret", valid, []byte("other")},
		{"malformed", "not.a.jwt", secret},
		{"empty", "", secret},
		{"no user id", noUser, secret},
		{"unsigned", none, secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetUserIDFromToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
