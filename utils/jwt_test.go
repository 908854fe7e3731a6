package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(42, secret)
	assert.Nil(t, err)

	userID, err := ParseUserID(token, secret)
	assert.Nil(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseUserIDRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, []byte("secret-a"))
	assert.Nil(t, err)

	_, err = ParseUserID(token, []byte("secret-b"))
	assert.NotNil(t, err)
}

func TestParseUserIDRejectsGarbage(t *testing.T) {
	_, err := ParseUserID("not-a-token", []byte("secret"))
	assert.NotNil(t, err)
}
