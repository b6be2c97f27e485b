package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	owner := &User{ID: 1, Username: "alice", Role: RoleUser}
	other := &User{ID: 2, Username: "bob", Role: RoleUser}
	admin := &User{ID: 3, Username: "root", Role: RoleAdmin}

	tests := []struct {
		name      string
		principal *User
		ownerID   int64
		policy    Policy
		want      bool
	}{
		{"public allows anonymous", nil, 1, PolicyPublic, true},
		{"public allows anyone", other, 1, PolicyPublic, true},

		{"owner-only allows owner", owner, 1, PolicyOwnerOnly, true},
		{"owner-only denies other user", other, 1, PolicyOwnerOnly, false},
		{"owner-only denies admin", admin, 1, PolicyOwnerOnly, false},
		{"owner-only denies anonymous", nil, 1, PolicyOwnerOnly, false},

		{"owner-or-admin allows owner", owner, 1, PolicyOwnerOrAdmin, true},
		{"owner-or-admin allows admin", admin, 1, PolicyOwnerOrAdmin, true},
		{"owner-or-admin denies other user", other, 1, PolicyOwnerOrAdmin, false},
		{"owner-or-admin denies anonymous", nil, 1, PolicyOwnerOrAdmin, false},

		{"admin-only allows admin", admin, 0, PolicyAdminOnly, true},
		{"admin-only denies owner", owner, 1, PolicyAdminOnly, false},
		{"admin-only denies anonymous", nil, 0, PolicyAdminOnly, false},

		{"unknown policy denies", owner, 1, Policy(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.principal, tt.ownerID, tt.policy))
		})
	}
}

func TestAllow_OwnershipByID(t *testing.T) {
	// Two distinct users sharing a display name must not be confused;
	// ownership compares ids only.
	a := &User{ID: 1, Username: "alice", Name: "Alice", Role: RoleUser}
	impostor := &User{ID: 9, Username: "alice2", Name: "Alice", Role: RoleUser}

	assert.True(t, Allow(a, 1, PolicyOwnerOnly))
	assert.False(t, Allow(impostor, 1, PolicyOwnerOnly))
}
