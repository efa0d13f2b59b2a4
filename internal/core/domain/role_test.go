package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
		err   error
	}{
		{input: "admin", want: RoleAdmin},
		{input: "editor", want: RoleEditor},
		{input: "viewer", want: RoleViewer},
		{input: " ADMIN ", want: RoleAdmin},
		{input: "superadmin", err: ErrInvalidRole},
		{input: "", err: ErrInvalidRole},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.input)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseRole(%q): expected %v, got %v", tc.input, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRole(%q): unexpected error %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleEditor, RoleViewer} {
		if !role.Valid() {
			t.Errorf("%q should be valid", role)
		}
	}
	if Role("root").Valid() {
		t.Error("unknown role should not be valid")
	}
}
