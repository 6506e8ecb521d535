package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/odyssey-erp/odyssey-admin/internal/shared"
)

// Demo credentials accepted by the console.
const (
	DemoEmail    = "admin@example.com"
	DemoPassword = "admin123"
	DemoName     = "Admin User"
)

// Repository looks accounts up.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

// StaticRepository serves a fixed account list.
type StaticRepository struct {
	accounts map[string]Account
}

// NewStaticRepository indexes accounts by lower-cased email.
func NewStaticRepository(accounts ...Account) *StaticRepository {
	idx := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		idx[strings.ToLower(a.Email)] = a
	}
	return &StaticRepository{accounts: idx}
}

// NewDemoRepository holds the single demo administrator.
func NewDemoRepository() (*StaticRepository, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return NewStaticRepository(Account{
		ID:           "1",
		Name:         DemoName,
		Email:        DemoEmail,
		PasswordHash: string(hash),
		IsActive:     true,
	}), nil
}

// FindByEmail fetches an account by email.
func (r *StaticRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	a, ok := r.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &a, nil
}

var _ Repository = (*StaticRepository)(nil)
