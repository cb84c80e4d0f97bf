// Package authtoken issues and verifies the signed bearer tokens used by the
// HTTP API. Tokens are HS256 JWTs carrying the account id and role.
package authtoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretIsRequired = errors.New("signing secret is required")
	ErrTokenIsInvalid   = errors.New("token is invalid")
)

// Claims is the token payload: the account id and role plus the registered
// expiry claims.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies bearer tokens with a shared HS256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a token codec. Tokens expire ttl after issuance.
func NewCodec(secret string, ttl time.Duration) (Codec, error) {
	if secret == "" {
		return Codec{}, ErrSecretIsRequired
	}
	if ttl <= 0 {
		return Codec{}, errors.New("token ttl must be positive")
	}

	return Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given account.
func (c Codec) Issue(userID, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(c.ttl)

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify parses and validates a token, rejecting any signing method other
// than the one tokens are issued with.
func (c Codec) Verify(tokenString string) (*Claims, error) {
	claims := new(Claims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenIsInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenIsInvalid
	}

	return claims, nil
}
