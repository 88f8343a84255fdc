package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/models"
)

// CreateRole inserts a new role node
func (r *OrgRepo) CreateRole(ctx context.Context, role *models.RoleNode) error {
	query := `
		INSERT INTO roles (id, institute_id, name, parent_role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		role.ID,
		role.InstituteID,
		role.Name,
		role.ParentRoleID,
		role.CreatedAt,
		role.UpdatedAt,
	)

	if err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to create role", err)
	}

	return nil
}

// GetRole retrieves a role node by id
func (r *OrgRepo) GetRole(ctx context.Context, id string) (*models.RoleNode, error) {
	query := `
		SELECT id, institute_id, name, parent_role_id, created_at, updated_at
		FROM roles
		WHERE id = $1
	`

	var role models.RoleNode
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&role.ID,
		&role.InstituteID,
		&role.Name,
		&role.ParentRoleID,
		&role.CreatedAt,
		&role.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "role not found")
		}
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to get role", err)
	}

	return &role, nil
}

// GetRolesByInstitute retrieves all roles of an institute in insertion
// order.
func (r *OrgRepo) GetRolesByInstitute(ctx context.Context, instituteID string) ([]*models.RoleNode, error) {
	query := `
		SELECT id, institute_id, name, parent_role_id, created_at, updated_at
		FROM roles
		WHERE institute_id = $1
		ORDER BY created_at ASC
	`

	return r.queryRoles(ctx, query, instituteID)
}

// GetChildren retrieves the direct children of a role in insertion
// order.
func (r *OrgRepo) GetChildren(ctx context.Context, roleID string) ([]*models.RoleNode, error) {
	query := `
		SELECT id, institute_id, name, parent_role_id, created_at, updated_at
		FROM roles
		WHERE parent_role_id = $1
		ORDER BY created_at ASC
	`

	return r.queryRoles(ctx, query, roleID)
}

func (r *OrgRepo) queryRoles(ctx context.Context, query string, arg interface{}) ([]*models.RoleNode, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to query roles", err)
	}
	defer rows.Close()

	roles := []*models.RoleNode{}
	for rows.Next() {
		var role models.RoleNode
		if err := rows.Scan(
			&role.ID,
			&role.InstituteID,
			&role.Name,
			&role.ParentRoleID,
			&role.CreatedAt,
			&role.UpdatedAt,
		); err != nil {
			return nil, apperr.Wrap(apperr.CodeStorage, "failed to scan role", err)
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to read roles", err)
	}

	return roles, nil
}

// UpdateParent re-points a role at a new parent (nil makes it a root)
func (r *OrgRepo) UpdateParent(ctx context.Context, roleID string, parentRoleID *string) error {
	query := `
		UPDATE roles
		SET parent_role_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, parentRoleID, roleID)
	if err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to update role parent", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to update role parent", err)
	}
	if affected == 0 {
		return apperr.New(apperr.CodeNotFound, "role not found")
	}

	return nil
}

// DeleteRoles removes the given roles. Grants reference roles with ON
// DELETE CASCADE, so their rows go with them.
func (r *OrgRepo) DeleteRoles(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM roles WHERE id IN (?)`, ids)
	if err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to delete roles", err)
	}
	query = r.db.Rebind(query)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to delete roles", err)
	}

	return nil
}
