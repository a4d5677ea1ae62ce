package role

import (
	"testing"

	"DocSlot/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestRules(t *testing.T) {
	admin := Principal{UserID: "a1", IsAdmin: true}
	user := Principal{UserID: "u1"}

	tests := []struct {
		name   string
		rule   Rule
		p      Principal
		target string
		allow  bool
	}{
		{"admin passes admin only", AdminOnly, admin, "", true},
		{"user fails admin only", AdminOnly, user, "", false},
		{"self matches", SelfOnly, user, "u1", true},
		{"admin is not self", SelfOnly, admin, "u1", false},
		{"empty id never matches", SelfOnly, Principal{}, "", false},
		{"self or admin as self", SelfOrAdmin, user, "u1", true},
		{"self or admin as admin", SelfOrAdmin, admin, "u1", true},
		{"self or admin as other", SelfOrAdmin, user, "u2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule(tt.p, tt.target)
			if tt.allow {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, 403, apperrors.StatusOf(err))
		})
	}
}

func TestPrincipalRole(t *testing.T) {
	assert.Equal(t, ADMIN, Principal{IsAdmin: true}.Role())
	assert.Equal(t, USER, Principal{}.Role())
}
