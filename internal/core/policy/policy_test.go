package policy

import (
	"testing"

	"github.com/opsdeck/admin-dashboard/internal/core/domain"
)

func TestDecide_AdminGatedActions(t *testing.T) {
	gated := []Action{ActionListUsers, ActionUpdateRole, ActionDeleteUser, ActionViewLogs}

	for _, action := range gated {
		for _, role := range []domain.Role{domain.RoleEditor, domain.RoleViewer} {
			actor := Actor{ID: "u1", Role: role}
			if err := Decide(actor, action, ""); err != domain.ErrForbidden {
				t.Errorf("%s as %s: expected ErrForbidden, got %v", action, role, err)
			}
		}
		if err := Decide(Actor{ID: "u1", Role: domain.RoleAdmin}, action, ""); err != nil {
			t.Errorf("%s as admin: expected allow, got %v", action, err)
		}
	}
}

func TestDecide_CreateContent(t *testing.T) {
	cases := []struct {
		role  domain.Role
		allow bool
	}{
		{domain.RoleAdmin, true},
		{domain.RoleEditor, true},
		{domain.RoleViewer, false},
	}
	for _, tc := range cases {
		err := Decide(Actor{ID: "u1", Role: tc.role}, ActionCreateContent, "")
		if tc.allow && err != nil {
			t.Errorf("create as %s: expected allow, got %v", tc.role, err)
		}
		if !tc.allow && err != domain.ErrForbidden {
			t.Errorf("create as %s: expected ErrForbidden, got %v", tc.role, err)
		}
	}
}

func TestDecide_MutateContent_OwnerOrAdmin(t *testing.T) {
	for _, action := range []Action{ActionUpdateContent, ActionDeleteContent} {
		// Owner may mutate regardless of role.
		if err := Decide(Actor{ID: "owner", Role: domain.RoleEditor}, action, "owner"); err != nil {
			t.Errorf("%s by owner: expected allow, got %v", action, err)
		}
		// Admin may mutate anyone's content.
		if err := Decide(Actor{ID: "someone", Role: domain.RoleAdmin}, action, "owner"); err != nil {
			t.Errorf("%s by admin: expected allow, got %v", action, err)
		}
		// Non-owner editor is denied.
		if err := Decide(Actor{ID: "other", Role: domain.RoleEditor}, action, "owner"); err != domain.ErrForbidden {
			t.Errorf("%s by non-owner editor: expected ErrForbidden, got %v", action, err)
		}
		// Non-owner viewer is denied.
		if err := Decide(Actor{ID: "other", Role: domain.RoleViewer}, action, "owner"); err != domain.ErrForbidden {
			t.Errorf("%s by non-owner viewer: expected ErrForbidden, got %v", action, err)
		}
	}
}

func TestDecide_MutateContent_EmptyActorIDNeverMatchesEmptyOwner(t *testing.T) {
	// A blank actor id must not accidentally match a blank owner id.
	if err := Decide(Actor{ID: "", Role: domain.RoleEditor}, ActionUpdateContent, ""); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDecide_ReadContent_AnyRole(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer} {
		if err := Decide(Actor{ID: "u1", Role: role}, ActionReadContent, ""); err != nil {
			t.Errorf("read as %s: expected allow, got %v", role, err)
		}
	}
}

func TestDecide_InvalidRoleAlwaysDenied(t *testing.T) {
	actor := Actor{ID: "u1", Role: domain.Role("superadmin")}
	actions := []Action{
		ActionListUsers, ActionUpdateRole, ActionDeleteUser, ActionViewLogs,
		ActionCreateContent, ActionReadContent, ActionUpdateContent, ActionDeleteContent,
	}
	for _, action := range actions {
		if err := Decide(actor, action, "u1"); err != domain.ErrForbidden {
			t.Errorf("%s with invalid role: expected ErrForbidden, got %v", action, err)
		}
	}
}

func TestDecide_UnknownActionDenied(t *testing.T) {
	if err := Decide(Actor{ID: "u1", Role: domain.RoleAdmin}, Action("users.export"), ""); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for unknown action, got %v", err)
	}
}

func TestDecide_AdminMayActOnSelf(t *testing.T) {
	// No safeguard against self-demotion or self-deletion.
	actor := Actor{ID: "admin1", Role: domain.RoleAdmin}
	if err := Decide(actor, ActionUpdateRole, ""); err != nil {
		t.Fatalf("admin self role update: expected allow, got %v", err)
	}
	if err := Decide(actor, ActionDeleteUser, ""); err != nil {
		t.Fatalf("admin self delete: expected allow, got %v", err)
	}
}
