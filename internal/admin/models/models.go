package models

import (
	id "admingate/pkg/domain"
	dErrors "admingate/pkg/domain-errors"
)

// This file contains pure domain models for admin accounts: entities that
// should not depend on transport or HTTP-specific concerns.

// AdminStatus is the lifecycle state of an admin account.
// The stored values match the legacy data ("Active"/"Inactive") exactly.
type AdminStatus string

const (
	StatusActive   AdminStatus = "Active"
	StatusInactive AdminStatus = "Inactive"
)

func (s AdminStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Admin represents an administrator account.
// This is a pure domain entity - use AdminView for JSON responses; the
// Password field must never cross the transport boundary.
type Admin struct {
	ID       id.AdminID
	Name     string
	Email    string
	Password string
	Status   AdminStatus
}

func (a *Admin) IsActive() bool {
	return a.Status == StatusActive
}

// NewAdmin constructs an Admin for the standard registration path.
// Status is always forced to Active regardless of what the caller supplied.
func NewAdmin(name, email, password string) (*Admin, error) {
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "admin email cannot be empty")
	}
	return &Admin{
		ID:       id.NewAdminID(),
		Name:     name,
		Email:    email,
		Password: password,
		Status:   StatusActive,
	}, nil
}

// NewAdminWithStatus constructs an Admin with an explicit status. Only for
// deliberate use (seeding, tests); the registration path never calls it.
func NewAdminWithStatus(name, email, password string, status AdminStatus) (*Admin, error) {
	if !status.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "invalid admin status: "+string(status))
	}
	admin, err := NewAdmin(name, email, password)
	if err != nil {
		return nil, err
	}
	admin.Status = status
	return admin, nil
}
