package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/logger"
	"github.com/staffloop/identity/internal/pkg/models"
)

// CreateRole inserts a role. A new node cannot be its own ancestor, so
// requiring the parent to already exist keeps the forest acyclic by
// construction.
func (u *OrgUC) CreateRole(ctx context.Context, instituteID, name string, parentRoleID *string) (*models.RoleNode, error) {
	lock := u.instituteLock(instituteID)
	lock.Lock()
	defer lock.Unlock()

	if parentRoleID != nil {
		parent, err := u.roleRepo.GetRole(ctx, *parentRoleID)
		if err != nil {
			return nil, err
		}
		if parent.InstituteID != instituteID {
			return nil, apperr.New(apperr.CodeCrossTenant, "parent role belongs to a different institute")
		}
	}

	now := time.Now()
	role := &models.RoleNode{
		ID:           uuid.New().String(),
		InstituteID:  instituteID,
		Name:         name,
		ParentRoleID: parentRoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.roleRepo.CreateRole(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	logger.Info("role created", logrus.Fields{
		"role_id":      role.ID,
		"institute_id": instituteID,
	})

	return role, nil
}

// Reparent moves a role under a new parent. The proposed parent's
// ancestry is walked upward: finding the role there would close a
// cycle.
func (u *OrgUC) Reparent(ctx context.Context, roleID, newParentRoleID string) error {
	role, err := u.roleRepo.GetRole(ctx, roleID)
	if err != nil {
		return err
	}

	lock := u.instituteLock(role.InstituteID)
	lock.Lock()
	defer lock.Unlock()

	if newParentRoleID == roleID {
		return apperr.New(apperr.CodeCycleDetected, "role cannot be its own parent")
	}

	newParent, err := u.roleRepo.GetRole(ctx, newParentRoleID)
	if err != nil {
		return err
	}
	if newParent.InstituteID != role.InstituteID {
		return apperr.New(apperr.CodeCrossTenant, "parent role belongs to a different institute")
	}

	ancestry, err := u.walkAncestry(ctx, newParent)
	if err != nil {
		return err
	}
	for _, ancestor := range ancestry {
		if ancestor.ID == roleID {
			return apperr.New(apperr.CodeCycleDetected, "re-parent would create a cycle")
		}
	}

	if err := u.roleRepo.UpdateParent(ctx, roleID, &newParentRoleID); err != nil {
		return fmt.Errorf("failed to reparent role: %w", err)
	}

	return nil
}

// GetTree returns all roles of an institute assembled into
// parent->children form. Sibling order is insertion order.
func (u *OrgUC) GetTree(ctx context.Context, instituteID string) ([]*models.RoleTreeNode, error) {
	roles, err := u.roleRepo.GetRolesByInstitute(ctx, instituteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	nodes := make(map[string]*models.RoleTreeNode, len(roles))
	for _, role := range roles {
		nodes[role.ID] = &models.RoleTreeNode{RoleNode: *role, Children: []*models.RoleTreeNode{}}
	}

	forest := []*models.RoleTreeNode{}
	for _, role := range roles {
		node := nodes[role.ID]
		if role.ParentRoleID == nil {
			forest = append(forest, node)
			continue
		}
		if parent, ok := nodes[*role.ParentRoleID]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			forest = append(forest, node)
		}
	}

	return forest, nil
}

// Ancestors returns the chain of strict ancestors from the role's
// parent up to its root.
func (u *OrgUC) Ancestors(ctx context.Context, roleID string) ([]*models.RoleNode, error) {
	role, err := u.roleRepo.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return u.walkAncestry(ctx, role)
}

// walkAncestry collects the strict ancestors of role, parent first. A
// seen-set caps the walk so it terminates even on corrupted data.
func (u *OrgUC) walkAncestry(ctx context.Context, role *models.RoleNode) ([]*models.RoleNode, error) {
	ancestors := []*models.RoleNode{}
	seen := map[string]bool{role.ID: true}

	current := role
	for current.ParentRoleID != nil {
		parent, err := u.roleRepo.GetRole(ctx, *current.ParentRoleID)
		if err != nil {
			return nil, err
		}
		if seen[parent.ID] {
			return nil, apperr.New(apperr.CodeCycleDetected, "role ancestry contains a cycle")
		}
		seen[parent.ID] = true
		ancestors = append(ancestors, parent)
		current = parent
	}

	return ancestors, nil
}

// DeleteRole removes a role according to the given policy.
func (u *OrgUC) DeleteRole(ctx context.Context, roleID string, policy models.DeletePolicy) error {
	role, err := u.roleRepo.GetRole(ctx, roleID)
	if err != nil {
		return err
	}

	lock := u.instituteLock(role.InstituteID)
	lock.Lock()
	defer lock.Unlock()

	children, err := u.roleRepo.GetChildren(ctx, roleID)
	if err != nil {
		return fmt.Errorf("failed to load children: %w", err)
	}

	if policy == "" {
		policy = models.DeleteRejectIfChildren
	}

	switch policy {
	case models.DeleteRejectIfChildren:
		if len(children) > 0 {
			return apperr.New(apperr.CodeHasChildren, "role has child roles")
		}
		return u.roleRepo.DeleteRoles(ctx, []string{roleID})

	case models.DeleteCascade:
		subtree, err := u.collectSubtree(ctx, roleID)
		if err != nil {
			return err
		}
		return u.roleRepo.DeleteRoles(ctx, subtree)

	case models.DeleteReparentChildren:
		for _, child := range children {
			if err := u.roleRepo.UpdateParent(ctx, child.ID, role.ParentRoleID); err != nil {
				return fmt.Errorf("failed to reparent child role: %w", err)
			}
		}
		return u.roleRepo.DeleteRoles(ctx, []string{roleID})
	}

	return fmt.Errorf("unknown delete policy: %s", policy)
}

// collectSubtree gathers the ids of a role and all its descendants,
// breadth-first.
func (u *OrgUC) collectSubtree(ctx context.Context, roleID string) ([]string, error) {
	ids := []string{roleID}
	queue := []string{roleID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		children, err := u.roleRepo.GetChildren(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("failed to load children: %w", err)
		}
		for _, child := range children {
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}

	return ids, nil
}
