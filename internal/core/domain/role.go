package domain

import "strings"

// Role is the closed set of actor roles. Anything outside the three
// constants is rejected at the mutation boundary via ParseRole.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ParseRole converts a raw string into a Role, failing with
// ErrInvalidRole for any value outside the enumerated set.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleEditor:
		return RoleEditor, nil
	case RoleViewer:
		return RoleViewer, nil
	default:
		return "", ErrInvalidRole
	}
}

// String returns the wire form of the role.
func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}
