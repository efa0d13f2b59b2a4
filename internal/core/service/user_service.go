package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
	"github.com/opsdeck/admin-dashboard/internal/core/ports"
)

// UserService implements the admin-gated user management operations.
type UserService struct {
	users  ports.UserRepository
	audit  ports.AuditService
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor policy.Actor) ([]domain.User, error) {
	if err := policy.Decide(actor, policy.ActionListUsers, ""); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// UpdateRole changes a user's role. The role value is validated before
// the user lookup so an invalid role never reaches the store, and the
// permissive self-demotion behaviour is intentional: an admin may
// change their own role with no safeguard.
func (s *UserService) UpdateRole(ctx context.Context, actor policy.Actor, id, rawRole string) error {
	if err := policy.Decide(actor, policy.ActionUpdateRole, ""); err != nil {
		return err
	}

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return err
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Str("role", role.String()).Msg("role updated")
	s.audit.Record(ctx, actor.ID, fmt.Sprintf("Role of %q changed to %s", target.Username, role))
	return nil
}

// Delete removes a user. Content owned by the user is left in place
// with a dangling author reference; listings render it as "Unknown".
func (s *UserService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if err := policy.Decide(actor, policy.ActionDeleteUser, ""); err != nil {
		return err
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	s.audit.Record(ctx, actor.ID, fmt.Sprintf("User %q deleted", target.Username))
	return nil
}
