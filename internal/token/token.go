// Package token issues and verifies the signed credential the storefront
// sends in the auth-token header. The payload carries only the user id.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid token")

type userClaim struct {
	ID string `json:"id"`
}

type Claims struct {
	User userClaim `json:"user"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens. TTL zero means tokens never
// expire; Issuer empty means no iss claim is set or checked.
type Issuer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (i *Issuer) Sign(userID string) (string, error) {
	claims := Claims{
		User: userClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if i.Issuer != "" {
		claims.Issuer = i.Issuer
	}
	if i.TTL != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(i.TTL))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.Secret)
}

// Verify checks the signature (and iss/exp when configured) and returns
// the embedded user id.
func (i *Issuer) Verify(raw string) (string, error) {
	var opts []jwt.ParserOption
	if i.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.Issuer))
	}
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.Secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return "", ErrInvalid
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.User.ID == "" {
		return "", ErrInvalid
	}
	return claims.User.ID, nil
}
