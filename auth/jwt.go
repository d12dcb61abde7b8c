package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails validation for any reason.
var ErrInvalidToken = errors.New("auth: invalid token")

// JWTValidator validates HS256-signed JWTs against a shared secret.
type JWTValidator struct {
	secret []byte
}

// NewJWTValidator returns a validator for the given signing secret.
func NewJWTValidator(secret string) (*JWTValidator, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	return &JWTValidator{secret: []byte(secret)}, nil
}

// Validate parses and verifies the token and returns its subject claim.
func (v *JWTValidator) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	subject, _ := claims.GetSubject()
	return subject, nil
}

// Sign creates a signed token with the given subject. Used primarily for
// issuing test tokens.
func (v *JWTValidator) Sign(subject string, claims map[string]interface{}) (string, error) {
	mapClaims := jwt.MapClaims{"sub": subject}
	for k, val := range claims {
		mapClaims[k] = val
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(v.secret)
}
