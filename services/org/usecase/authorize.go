package usecase

import (
	"context"
	"fmt"
)

// GrantCapability grants a capability at a role. The grant applies to
// the role and every descendant.
func (u *OrgUC) GrantCapability(ctx context.Context, roleID, capability string) error {
	if _, err := u.roleRepo.GetRole(ctx, roleID); err != nil {
		return err
	}
	if err := u.grantRepo.AddGrant(ctx, roleID, capability); err != nil {
		return fmt.Errorf("failed to add grant: %w", err)
	}
	return nil
}

// RevokeCapability removes a direct grant from a role. Inherited grants
// are untouched.
func (u *OrgUC) RevokeCapability(ctx context.Context, roleID, capability string) error {
	if err := u.grantRepo.RemoveGrant(ctx, roleID, capability); err != nil {
		return fmt.Errorf("failed to remove grant: %w", err)
	}
	return nil
}

// Authorize unions the capabilities granted at the role and at every
// ancestor and checks membership. A role with no grant anywhere in its
// ancestry is denied; there is no implicit superuser role in the tree.
func (u *OrgUC) Authorize(ctx context.Context, roleID, capability string) (bool, error) {
	role, err := u.roleRepo.GetRole(ctx, roleID)
	if err != nil {
		return false, err
	}

	ancestors, err := u.walkAncestry(ctx, role)
	if err != nil {
		return false, err
	}

	ids := make([]string, 0, len(ancestors)+1)
	ids = append(ids, role.ID)
	for _, ancestor := range ancestors {
		ids = append(ids, ancestor.ID)
	}

	capabilities, err := u.grantRepo.GetCapabilities(ctx, ids)
	if err != nil {
		return false, fmt.Errorf("failed to load grants: %w", err)
	}

	for _, granted := range capabilities {
		if granted == capability {
			return true, nil
		}
	}

	return false, nil
}
