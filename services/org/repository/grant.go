package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/staffloop/identity/internal/pkg/apperr"
)

// AddGrant binds a capability to a role. Re-granting is a no-op.
func (r *OrgRepo) AddGrant(ctx context.Context, roleID, capability string) error {
	query := `
		INSERT INTO role_grants (role_id, capability, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (role_id, capability) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, roleID, capability); err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to add grant", err)
	}

	return nil
}

// RemoveGrant removes a direct capability grant from a role
func (r *OrgRepo) RemoveGrant(ctx context.Context, roleID, capability string) error {
	query := `
		DELETE FROM role_grants
		WHERE role_id = $1 AND capability = $2
	`

	if _, err := r.db.ExecContext(ctx, query, roleID, capability); err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to remove grant", err)
	}

	return nil
}

// GetCapabilities returns the distinct capabilities granted across the
// given roles.
func (r *OrgRepo) GetCapabilities(ctx context.Context, roleIDs []string) ([]string, error) {
	if len(roleIDs) == 0 {
		return []string{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT capability
		FROM role_grants
		WHERE role_id IN (?)
	`, roleIDs)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to query grants", err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to query grants", err)
	}
	defer rows.Close()

	capabilities := []string{}
	for rows.Next() {
		var capability string
		if err := rows.Scan(&capability); err != nil {
			return nil, apperr.Wrap(apperr.CodeStorage, "failed to scan grant", err)
		}
		capabilities = append(capabilities, capability)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to read grants", err)
	}

	return capabilities, nil
}
