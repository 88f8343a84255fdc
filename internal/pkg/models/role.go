package models

import (
	"time"
)

// RoleNode is one role in an institute's role forest. A nil ParentRoleID
// marks a root role.
type RoleNode struct {
	ID           string    `json:"id" db:"id"`
	InstituteID  string    `json:"institute_id" db:"institute_id"`
	Name         string    `json:"name" db:"name"`
	ParentRoleID *string   `json:"parent_role_id,omitempty" db:"parent_role_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// RoleTreeNode is a RoleNode assembled into parent->children form.
// Sibling order is insertion order.
type RoleTreeNode struct {
	RoleNode
	Children []*RoleTreeNode `json:"children"`
}

// DeletePolicy selects how DeleteRole treats child roles.
type DeletePolicy string

const (
	DeleteRejectIfChildren DeletePolicy = "reject_if_children"
	DeleteCascade          DeletePolicy = "cascade"
	DeleteReparentChildren DeletePolicy = "reparent_children"
)

// Grant binds a capability to a role. Capabilities granted at a role
// apply to every descendant of that role.
type Grant struct {
	RoleID     string    `json:"role_id" db:"role_id"`
	Capability string    `json:"capability" db:"capability"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateRoleRequest is the payload to create a role.
type CreateRoleRequest struct {
	Name         string  `json:"name" validate:"required"`
	ParentRoleID *string `json:"parent_role_id"`
}

// ReparentRequest is the payload to move a role under a new parent.
type ReparentRequest struct {
	NewParentRoleID string `json:"new_parent_role_id" validate:"required"`
}

// GrantRequest is the payload to grant a capability at a role.
type GrantRequest struct {
	Capability string `json:"capability" validate:"required"`
}
