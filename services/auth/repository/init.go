package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/staffloop/identity/internal/pkg/database"
	"github.com/staffloop/identity/internal/pkg/models"
)

// AuthRepo implements the session and user repository interfaces over
// Redis and PostgreSQL.
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
