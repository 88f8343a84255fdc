package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/staffloop/identity/internal/pkg/models"
)

// OrgRepo implements the role and grant repository interfaces over
// PostgreSQL.
type OrgRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOrgRepo creates a new org repository instance
func NewOrgRepo(cfg *models.Config, db *sqlx.DB) *OrgRepo {
	return &OrgRepo{
		cfg: cfg,
		db:  db,
	}
}
