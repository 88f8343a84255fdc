package org

import (
	"context"

	"github.com/staffloop/identity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/staffloop/identity/services/org RoleRepo,GrantRepo

// RoleRepo is the durable store of role nodes.
type RoleRepo interface {
	CreateRole(ctx context.Context, role *models.RoleNode) error
	GetRole(ctx context.Context, id string) (*models.RoleNode, error)
	GetRolesByInstitute(ctx context.Context, instituteID string) ([]*models.RoleNode, error)
	GetChildren(ctx context.Context, roleID string) ([]*models.RoleNode, error)
	UpdateParent(ctx context.Context, roleID string, parentRoleID *string) error
	DeleteRoles(ctx context.Context, ids []string) error
}

// GrantRepo is the durable store of capability grants.
type GrantRepo interface {
	AddGrant(ctx context.Context, roleID, capability string) error
	RemoveGrant(ctx context.Context, roleID, capability string) error
	GetCapabilities(ctx context.Context, roleIDs []string) ([]string, error)
}
