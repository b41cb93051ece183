// Package store persists admin accounts keyed by unique email.
package store

import (
	"context"
	"errors"

	"admingate/internal/admin/models"
	id "admingate/pkg/domain"
)

// Sentinel dependency errors. Implementations return these (optionally
// wrapped) so the service can translate them into domain errors exactly once.
var (
	// ErrNotFound signals that the requested admin does not exist.
	// Absence is a normal outcome for lookups, not an infrastructure failure.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate signals a violation of the store-enforced email uniqueness.
	ErrDuplicate = errors.New("duplicate email")
)

// Store is the persistence interface for admin accounts.
//
// Error Contract:
// - Find methods return ErrNotFound when the admin doesn't exist
// - Create returns ErrDuplicate when the email is already registered
// - Infrastructure failures are returned wrapped with context
type Store interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, adminID id.AdminID) (*models.Admin, error)
}
