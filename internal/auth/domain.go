package auth

import "github.com/odyssey-erp/odyssey-admin/internal/shared"

// Account is an operator allowed to sign in.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
}

// Profile returns the snapshot stored in the session.
func (a Account) Profile() shared.Profile {
	return shared.Profile{ID: a.ID, Name: a.Name, Email: a.Email}
}
