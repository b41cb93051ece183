package models

// AdminView is the JSON representation of an admin account. It intentionally
// has no password field; the stored record keeps the credential internal.
type AdminView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// NewAdminView maps a domain Admin to its response representation.
func NewAdminView(a *Admin) *AdminView {
	return &AdminView{
		ID:     a.ID.String(),
		Name:   a.Name,
		Email:  a.Email,
		Status: string(a.Status),
	}
}

// LoginResult carries the bearer token issued on successful login.
type LoginResult struct {
	Token string `json:"token"`
}
