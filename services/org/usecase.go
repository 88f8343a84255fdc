package org

import (
	"context"

	"github.com/staffloop/identity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/staffloop/identity/services/org OrgUC

// OrgUC manages each institute's role forest and answers authorization
// queries against it.
type OrgUC interface {
	CreateRole(ctx context.Context, instituteID, name string, parentRoleID *string) (*models.RoleNode, error)
	Reparent(ctx context.Context, roleID, newParentRoleID string) error
	GetTree(ctx context.Context, instituteID string) ([]*models.RoleTreeNode, error)
	Ancestors(ctx context.Context, roleID string) ([]*models.RoleNode, error)
	DeleteRole(ctx context.Context, roleID string, policy models.DeletePolicy) error

	GrantCapability(ctx context.Context, roleID, capability string) error
	RevokeCapability(ctx context.Context, roleID, capability string) error

	// Authorize reports whether the role carries the capability, either
	// directly or inherited from an ancestor. Deny is the default.
	Authorize(ctx context.Context, roleID, capability string) (bool, error)
}
