package constants

import "testing"

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleTeacher, true},
		{"student", false},
		{"Admin", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsValidRole(tc.role); got != tc.want {
			t.Errorf("IsValidRole(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestAllRolesCoversEveryConstant(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range AllRoles {
		seen[r] = true
	}
	for _, r := range []string{RoleAdmin, RoleTeacher} {
		if !seen[r] {
			t.Errorf("AllRoles is missing %q", r)
		}
	}
}
