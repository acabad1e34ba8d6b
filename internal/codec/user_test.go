package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

func TestUser_RoundTrip(t *testing.T) {
	u := models.User{
		ID:            "u-1",
		Username:      "ali|ce",
		Password:      "$2a$10$hash",
		Email:         "a@example.com",
		Avatar:        "",
		TotalLikes:    7,
		TotalComments: 2,
		RegisteredAt:  time.UnixMilli(1690000000000),
		Role:          models.RoleUser,
	}
	got, ok := DecodeUser(EncodeUser(u))
	require.True(t, ok)
	assert.Equal(t, u, got)
}

func TestDecodeUser_EightFields(t *testing.T) {
	got, ok := DecodeUser("u2|bob|pw|||1|2|1690000000000")
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1690000000000), got.RegisteredAt)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestDecodeUser_LegacyFollowedTags(t *testing.T) {
	got, ok := DecodeUser("u3|carol|pw|||0|0|tech,go|1680000000000")
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1680000000000), got.RegisteredAt)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestDecodeUser_LegacyAdminByName(t *testing.T) {
	got, ok := DecodeUser("admin|admin|12345|admin@example.com||0|0|1680000000000")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, got.Role)
}

func TestDecodeUser_ExplicitRoleWins(t *testing.T) {
	got, ok := DecodeUser("x|admin|pw|||0|0|1|user")
	require.True(t, ok)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestDecodeUser_TooFewFields(t *testing.T) {
	_, ok := DecodeUser("u|name|pw")
	assert.False(t, ok)
}
