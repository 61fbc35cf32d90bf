package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_GetUserID(t *testing.T) {
	token := &Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}

	id, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestToken_GetUserID_NotANumber(t *testing.T) {
	token := &Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	}

	_, err := token.GetUserID()
	assert.Error(t, err)
}

func TestToken_String(t *testing.T) {
	token := &Token{SignedString: "header.payload.signature"}
	assert.Equal(t, "header.payload.signature", token.String())
}
