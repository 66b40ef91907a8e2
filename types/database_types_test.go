package types

import "testing"

func TestRoleValid(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleUser, true},
		{RoleAdmin, true},
		{Role(""), false},
		{Role("superuser"), false},
		{Role("Admin"), false},
	}

	for _, tc := range cases {
		if got := tc.role.Valid(); got != tc.want {
			t.Errorf("Role(%q).Valid() = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestRelationshipValid(t *testing.T) {
	for _, r := range []Relationship{RelSingle, RelEngaged, RelMarried, RelDivorced, RelComplicated, RelDating} {
		if !r.Valid() {
			t.Errorf("Relationship(%q).Valid() = false", r)
		}
	}

	for _, r := range []Relationship{"", "widowed", "Single"} {
		if r.Valid() {
			t.Errorf("Relationship(%q).Valid() = true", r)
		}
	}
}
