// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "admingate/pkg/domain-errors"
)

// AdminID identifies an admin account. The store assigns it at creation.
type AdminID uuid.UUID

// NewAdminID generates a fresh random admin identifier.
func NewAdminID() AdminID {
	return AdminID(uuid.New())
}

// ParseAdminID validates an identifier at trust boundaries (handlers, API inputs).
func ParseAdminID(s string) (AdminID, error) {
	if s == "" {
		return AdminID{}, dErrors.New(dErrors.CodeInvalidInput, "admin ID cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return AdminID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid admin ID format")
	}
	return AdminID(id), nil
}

func (id AdminID) String() string { return uuid.UUID(id).String() }

func (id AdminID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
