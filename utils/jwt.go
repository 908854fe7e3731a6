package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues a signed HS256 token carrying the user id, valid
// for 30 days.
func GenerateJWT(userID uint, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(30 * 24 * time.Hour).Unix(),
	})
	return token.SignedString(secret)
}

// ParseUserID validates a bearer token and extracts the user id claim.
func ParseUserID(tokenString string, secret []byte) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	switch id := claims["userId"].(type) {
	case float64: // common when the JWT was JSON-encoded
		return uint(id), nil
	case int64:
		return uint(id), nil
	}
	return 0, errors.New("userId claim missing")
}
