package authz

import (
	"github.com/google/uuid"

	"scrumflow-api/internal/domain"
)

// Actor is the authenticated identity a request acts as, with its global
// roles resolved once per request.
type Actor struct {
	UserID uuid.UUID
	Roles  []domain.Role
}

// HasRole reports whether the actor holds the given global role
func (a Actor) HasRole(role domain.Role) bool {
	if role == domain.RoleMember {
		// every authenticated user is implicitly a member
		return true
	}
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsSuperuser reports whether the actor bypasses all authorization checks
func (a Actor) IsSuperuser() bool {
	return a.HasRole(domain.RoleSuperuser)
}

// IsEditor reports whether the actor holds project-management rights
// without being a project owner
func (a Actor) IsEditor() bool {
	return a.HasRole(domain.RoleEditor)
}
