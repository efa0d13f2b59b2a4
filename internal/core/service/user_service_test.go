package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/policy"
)

func newUserFixture() (*UserService, *stubUserRepo, *stubAuditRepo) {
	users := newStubUserRepo()
	auditRepo := &stubAuditRepo{}
	audit := NewAuditRecorder(auditRepo, users, zerolog.Nop())
	svc := NewUserService(users, audit, zerolog.Nop())
	return svc, users, auditRepo
}

func TestUserService_List_AdminOnly(t *testing.T) {
	svc, users, _ := newUserFixture()
	admin := seedUser(t, users, "admin", domain.RoleAdmin)
	editor := seedUser(t, users, "editor", domain.RoleEditor)

	listed, err := svc.List(context.Background(), policy.Actor{ID: admin.ID, Role: admin.Role})
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 users, got %d", len(listed))
	}

	if _, err := svc.List(context.Background(), policy.Actor{ID: editor.ID, Role: editor.Role}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for editor, got %v", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	svc, users, auditRepo := newUserFixture()
	admin := seedUser(t, users, "admin", domain.RoleAdmin)
	target := seedUser(t, users, "target", domain.RoleViewer)
	actor := policy.Actor{ID: admin.ID, Role: admin.Role}

	if err := svc.UpdateRole(context.Background(), actor, target.ID, "editor"); err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	updated, _ := users.FindByID(context.Background(), target.ID)
	if updated.Role != domain.RoleEditor {
		t.Fatalf("role not updated: %s", updated.Role)
	}
	if len(auditRepo.events) != 1 {
		t.Fatalf("expected audit event, got %d", len(auditRepo.events))
	}
}

func TestUserService_UpdateRole_InvalidRoleNoMutation(t *testing.T) {
	svc, users, _ := newUserFixture()
	admin := seedUser(t, users, "admin", domain.RoleAdmin)
	target := seedUser(t, users, "target", domain.RoleViewer)

	err := svc.UpdateRole(context.Background(), policy.Actor{ID: admin.ID, Role: admin.Role}, target.ID, "superadmin")
	if err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	unchanged, _ := users.FindByID(context.Background(), target.ID)
	if unchanged.Role != domain.RoleViewer {
		t.Fatalf("role mutated on invalid input: %s", unchanged.Role)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc, users, _ := newUserFixture()
	admin := seedUser(t, users, "admin", domain.RoleAdmin)

	err := svc.UpdateRole(context.Background(), policy.Actor{ID: admin.ID, Role: admin.Role}, "missing", "editor")
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateRole_NonAdminDenied(t *testing.T) {
	svc, users, _ := newUserFixture()
	editor := seedUser(t, users, "editor", domain.RoleEditor)
	target := seedUser(t, users, "target", domain.RoleViewer)

	err := svc.UpdateRole(context.Background(), policy.Actor{ID: editor.ID, Role: editor.Role}, target.ID, "admin")
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, users, _ := newUserFixture()
	admin := seedUser(t, users, "admin", domain.RoleAdmin)
	target := seedUser(t, users, "target", domain.RoleViewer)

	if err := svc.Delete(context.Background(), policy.Actor{ID: admin.ID, Role: admin.Role}, target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := users.FindByID(context.Background(), target.ID); err != domain.ErrUserNotFound {
		t.Fatalf("user not removed")
	}

	if err := svc.Delete(context.Background(), policy.Actor{ID: admin.ID, Role: admin.Role}, target.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on repeat delete, got %v", err)
	}
}

func TestUserService_Delete_SelfAllowed(t *testing.T) {
	// No last-admin protection: an admin may delete themself.
	svc, users, _ := newUserFixture()
	admin := seedUser(t, users, "admin", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), policy.Actor{ID: admin.ID, Role: admin.Role}, admin.ID); err != nil {
		t.Fatalf("self delete failed: %v", err)
	}
}
