package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a global role granted to a user
type Role string

const (
	// RoleSuperuser bypasses all authorization checks
	RoleSuperuser Role = "superuser"
	// RoleEditor grants project-management rights without ownership
	RoleEditor Role = "editor"
	// RoleMember is the implicit base role of every authenticated user;
	// it is never stored as a grant row
	RoleMember Role = "member"
)

// RoleGrant attaches a global role to a user
type RoleGrant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_role_grants_user_id;uniqueIndex:uq_role_grants_user_role" json:"user_id"`
	Role      Role      `gorm:"type:varchar(50);not null;uniqueIndex:uq_role_grants_user_role" json:"role"`
	GrantedAt time.Time `gorm:"type:timestamp;not null;default:now()" json:"granted_at"`
}

// TableName specifies the table name for RoleGrant
func (RoleGrant) TableName() string {
	return "role_grants"
}
