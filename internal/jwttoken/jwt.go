// Package jwttoken issues and verifies the signed bearer tokens that gate
// the admin API. Tokens are stateless: validity is fully determined by the
// HMAC signature and the embedded expiry.
package jwttoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "admingate/pkg/domain-errors"
)

// Claims are the JWT claims carried by an admin token. The only identity
// claim is the holder's email, kept in the standard subject field.
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the identity claim embedded in the token.
func (c *Claims) Email() string {
	return c.Subject
}

// Service handles token creation and validation. The signing key is
// process-wide configuration: constructed once at startup, never rotated.
type Service struct {
	signingKey []byte
	issuer     string
	tokenTTL   time.Duration
}

func NewService(signingKey string, issuer string, tokenTTL time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		tokenTTL:   tokenTTL,
	}
}

// Issue produces a compact signed token asserting the given email, expiring
// after the configured validity window.
func (s *Service) Issue(email string) (string, error) {
	if email == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "email cannot be empty")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Expiry and tampering are reported as distinct domain codes; the
// authorization filter collapses both into a generic unauthorized response.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeTokenInvalid, "empty token")
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeTokenExpired, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeTokenInvalid, "invalid token")
	}

	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeTokenInvalid, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeTokenInvalid, "invalid token claims")
	}
	if claims.Subject == "" {
		return nil, dErrors.New(dErrors.CodeTokenInvalid, "token missing subject")
	}

	return claims, nil
}
