package handler_test

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opsdeck/admin-dashboard/internal/api"
	"github.com/opsdeck/admin-dashboard/internal/api/handler"
	"github.com/opsdeck/admin-dashboard/internal/api/middleware"
	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
	"github.com/opsdeck/admin-dashboard/internal/core/ports"
)

// newEcho returns an Echo instance configured the same way the router
// configures the real one: custom validator and error handler.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

// setActor injects auth claims as the Auth middleware would.
func setActor(c echo.Context, id string, role domain.Role) {
	c.Set(middleware.ContextUserID, id)
	c.Set(middleware.ContextRole, role)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	listFn       func(ctx context.Context, actor policy.Actor) ([]domain.User, error)
	updateRoleFn func(ctx context.Context, actor policy.Actor, id, role string) error
	deleteFn     func(ctx context.Context, actor policy.Actor, id string) error
}

func (s *stubUserService) List(ctx context.Context, actor policy.Actor) ([]domain.User, error) {
	return s.listFn(ctx, actor)
}

func (s *stubUserService) UpdateRole(ctx context.Context, actor policy.Actor, id, role string) error {
	return s.updateRoleFn(ctx, actor, id, role)
}

func (s *stubUserService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

type stubContentService struct {
	listFn   func(ctx context.Context, actor policy.Actor) ([]ports.PostView, error)
	createFn func(ctx context.Context, actor policy.Actor, title, body string) (*domain.Post, error)
	updateFn func(ctx context.Context, actor policy.Actor, id string, input ports.UpdatePostInput) (*domain.Post, error)
	deleteFn func(ctx context.Context, actor policy.Actor, id string) error
}

func (s *stubContentService) List(ctx context.Context, actor policy.Actor) ([]ports.PostView, error) {
	return s.listFn(ctx, actor)
}

func (s *stubContentService) Create(ctx context.Context, actor policy.Actor, title, body string) (*domain.Post, error) {
	return s.createFn(ctx, actor, title, body)
}

func (s *stubContentService) Update(ctx context.Context, actor policy.Actor, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	return s.updateFn(ctx, actor, id, input)
}

func (s *stubContentService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	return s.deleteFn(ctx, actor, id)
}

type stubAuditService struct {
	recorded []string
	listFn   func(ctx context.Context, actor policy.Actor) ([]ports.AuditView, error)
}

func (s *stubAuditService) Record(_ context.Context, _ string, message string) {
	s.recorded = append(s.recorded, message)
}

func (s *stubAuditService) ListRecent(ctx context.Context, actor policy.Actor) ([]ports.AuditView, error) {
	return s.listFn(ctx, actor)
}
