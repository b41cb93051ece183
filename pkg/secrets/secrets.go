package secrets

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "admingate/pkg/domain-errors"
)

// Hash creates a bcrypt hash of the provided secret.
// Use this to securely store credentials for later verification.
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", dErrors.New(dErrors.CodeValidation, "secret cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "secret is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash secret")
	}
	return string(hashed), nil
}

// Verify checks if a plaintext secret matches a bcrypt hash.
func Verify(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid secret")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify secret")
	}
	return nil
}

// Equal compares two plaintext secrets in constant time to avoid a timing
// channel on the comparison itself.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
