package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenUser is the identity embedded in a token. The payload keeps the
// {"user":{"id":"..."}} shape the old API issued so existing clients stay
// valid.
type TokenUser struct {
	ID string `json:"id"`
}

type Claims struct {
	jwt.RegisteredClaims
	User TokenUser `json:"user"`
}

// GenerateToken signs an HS256 token for the user id, expiring after the
// given validity window.
func GenerateToken(userID string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		User: TokenUser{ID: userID},
	})
	return token.SignedString(secret)
}

// VerifyToken parses and validates a token, returning the embedded claims.
// Any failure (bad signature, malformed input, wrong method, expiry) comes
// back as ErrInvalidToken.
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.User.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
