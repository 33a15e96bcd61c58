package utils

import (
	"testing"
	"time"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	clientID := uint(7)
	user := &entity.User{
		Email:    "joao@email.com",
		Role:     entity.RoleCliente,
		ClientID: &clientID,
	}
	user.ID = 42

	tok, err := GenerateToken(user, "segredo", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseToken(tok, "segredo")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, entity.RoleCliente, claims.Role)
	require.NotNil(t, claims.ClientID)
	assert.Equal(t, clientID, *claims.ClientID)
	assert.Nil(t, claims.RestaurantID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &entity.User{Role: entity.RoleAdmin}
	user.ID = 1

	tok, err := GenerateToken(user, "segredo", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, "outro-segredo")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	user := &entity.User{Role: entity.RoleAdmin}
	user.ID = 1

	tok, err := GenerateToken(user, "segredo", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, "segredo")
	assert.Error(t, err)
}
