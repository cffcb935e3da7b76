package auth

import (
	"testing"

	"jobport_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	fullAdmin := &Principal{ID: "fa", Role: models.UserRoleFullAdmin}
	admin := &Principal{ID: "a1", Role: models.UserRoleAdmin}
	employer := &Principal{ID: "e1", Role: models.UserRoleEmployer}
	seeker := &Principal{ID: "s1", Role: models.UserRoleJobSeeker}

	tests := []struct {
		name       string
		p          *Principal
		ownerID    string
		ownerRole  models.UserRole
		visibility Visibility
		action     Action
		wantErr    bool
	}{
		{"full admin reads anything", fullAdmin, "s1", models.UserRoleJobSeeker, VisibilityOwnerOnly, ActionRead, false},
		{"full admin writes admin record", fullAdmin, "a1", models.UserRoleAdmin, VisibilityOwnerOnly, ActionWrite, false},

		{"admin own record", admin, "a1", models.UserRoleAdmin, VisibilityOwnerOnly, ActionWrite, false},
		{"admin reads seeker record", admin, "s1", models.UserRoleJobSeeker, VisibilityOwnerOnly, ActionRead, false},
		{"admin writes employer record", admin, "e1", models.UserRoleEmployer, VisibilityOwnerOnly, ActionWrite, false},
		{"admin blocked on other admin", admin, "a2", models.UserRoleAdmin, VisibilityOwnerOnly, ActionRead, true},
		{"admin blocked on full admin", admin, "fa", models.UserRoleFullAdmin, VisibilityOwnerOnly, ActionWrite, true},

		{"seeker own record", seeker, "s1", models.UserRoleJobSeeker, VisibilityOwnerOnly, ActionWrite, false},
		{"seeker blocked on peer owner-only", seeker, "s2", models.UserRoleJobSeeker, VisibilityOwnerOnly, ActionRead, true},
		{"seeker reads peer-read record", seeker, "e1", models.UserRoleEmployer, VisibilityPeerRead, ActionRead, false},
		{"seeker blocked writing peer-read record", seeker, "e1", models.UserRoleEmployer, VisibilityPeerRead, ActionWrite, true},
		{"seeker blocked on employer-read resume", seeker, "s2", models.UserRoleJobSeeker, VisibilityEmployerRead, ActionRead, true},

		{"employer reads resume", employer, "s1", models.UserRoleJobSeeker, VisibilityEmployerRead, ActionRead, false},
		{"employer blocked writing resume", employer, "s1", models.UserRoleJobSeeker, VisibilityEmployerRead, ActionWrite, true},
		{"employer own record", employer, "e1", models.UserRoleEmployer, VisibilityOwnerOnly, ActionWrite, false},

		{"unknown role rejected", &Principal{ID: "x", Role: "ghost"}, "x", "ghost", VisibilityPeerRead, ActionRead, true},
		{"nil principal rejected", nil, "s1", models.UserRoleJobSeeker, VisibilityPeerRead, ActionRead, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.p, tt.ownerID, tt.ownerRole, tt.visibility, tt.action)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanReassignOwnership(t *testing.T) {
	assert.True(t, CanReassignOwnership(&Principal{Role: models.UserRoleFullAdmin}))
	assert.False(t, CanReassignOwnership(&Principal{Role: models.UserRoleAdmin}))
	assert.False(t, CanReassignOwnership(&Principal{Role: models.UserRoleEmployer}))
	assert.False(t, CanReassignOwnership(nil))
}
