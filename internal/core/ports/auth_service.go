package ports

import (
	"context"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthResult bundles the identity with a freshly minted session token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
