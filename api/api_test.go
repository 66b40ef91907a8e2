package api

import (
	"testing"

	"github.com/charlesdev96/charlie-chat-app/types"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name      string
		role      types.Role
		permitted []types.Role
		want      bool
	}{
		{"any valid role with empty set", types.RoleUser, nil, true},
		{"admin with empty set", types.RoleAdmin, nil, true},
		{"role in set", types.RoleAdmin, []types.Role{types.RoleAdmin}, true},
		{"role in larger set", types.RoleUser, []types.Role{types.RoleAdmin, types.RoleUser}, true},
		{"role outside set", types.RoleUser, []types.Role{types.RoleAdmin}, false},
		{"unknown role always denied", types.Role("superuser"), nil, false},
		{"unknown role denied even when listed", types.Role("superuser"), []types.Role{types.Role("superuser")}, false},
		{"empty role denied", types.Role(""), nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allowed(tc.role, tc.permitted...); got != tc.want {
				t.Errorf("Allowed(%q, %v) = %v, want %v", tc.role, tc.permitted, got, tc.want)
			}
		})
	}
}
