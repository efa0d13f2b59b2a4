// Package policy is the single authorization decision point. Every
// resource service asks Decide before mutating or reading anything;
// handlers never compare roles themselves.
package policy

import "github.com/opsdeck/admin-dashboard/internal/core/domain"

// Action enumerates everything an actor can ask the system to do.
type Action string

const (
	ActionListUsers     Action = "users.list"
	ActionUpdateRole    Action = "users.update_role"
	ActionDeleteUser    Action = "users.delete"
	ActionViewLogs      Action = "logs.view"
	ActionCreateContent Action = "content.create"
	ActionReadContent   Action = "content.read"
	ActionUpdateContent Action = "content.update"
	ActionDeleteContent Action = "content.delete"
)

// Actor is the authenticated identity a decision is made for, as
// recovered from a verified session token.
type Actor struct {
	ID   string
	Role domain.Role
}

// Decide returns nil when the actor may perform action, or
// domain.ErrForbidden when the policy denies it. ownerID is the owning
// identity of the resource being acted on and is only consulted for
// content mutation; pass "" for actions without an owned resource.
//
// Rules, first match wins:
//  1. Admin-gated actions require RoleAdmin.
//  2. Content creation requires RoleAdmin or RoleEditor.
//  3. Content mutation/deletion requires RoleAdmin or ownership.
//  4. Content reads require any valid role.
//
// Callers must resolve resource existence before calling Decide so a
// missing resource surfaces as not-found, never as forbidden.
func Decide(actor Actor, action Action, ownerID string) error {
	if !actor.Role.Valid() {
		return domain.ErrForbidden
	}

	switch action {
	case ActionListUsers, ActionUpdateRole, ActionDeleteUser, ActionViewLogs:
		if actor.Role == domain.RoleAdmin {
			return nil
		}
		return domain.ErrForbidden

	case ActionCreateContent:
		if actor.Role == domain.RoleAdmin || actor.Role == domain.RoleEditor {
			return nil
		}
		return domain.ErrForbidden

	case ActionUpdateContent, ActionDeleteContent:
		if actor.Role == domain.RoleAdmin {
			return nil
		}
		if actor.ID != "" && actor.ID == ownerID {
			return nil
		}
		return domain.ErrForbidden

	case ActionReadContent:
		// Any authenticated identity may read; Valid() already held.
		return nil

	default:
		return domain.ErrForbidden
	}
}
