package models

import (
	s "admingate/pkg/strings"
)

// RegisterRequest is the body of POST /auth/register.
// There is deliberately no status field: registration always yields an
// Active account, whatever the client sends.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// Sanitize trims surrounding whitespace from identity fields. The password
// is left untouched so stored credentials compare byte for byte.
func (r *RegisterRequest) Sanitize() {
	s.TrimStrings(&r.Name, &r.Email)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

func (r *LoginRequest) Sanitize() {
	s.TrimStrings(&r.Email)
}
