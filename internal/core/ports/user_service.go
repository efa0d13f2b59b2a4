package ports

import (
	"context"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
)

// UserService exposes the admin-gated user management operations.
type UserService interface {
	List(ctx context.Context, actor policy.Actor) ([]domain.User, error)
	UpdateRole(ctx context.Context, actor policy.Actor, id, role string) error
	Delete(ctx context.Context, actor policy.Actor, id string) error
}
