package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// CreateUser inserts a durable user record. The unique constraints on
// email and mobile resolve the duplicate-registration race: the losing
// insert surfaces as Conflict.
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, date_of_birth, email, mobile,
			avatar_url, password_hash, role_id, institute_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Email,
		user.Mobile,
		user.AvatarURL,
		user.PasswordHash,
		user.RoleID,
		user.InstituteID,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.Wrap(apperr.CodeConflict, "email or mobile already registered", err)
		}
		return apperr.Wrap(apperr.CodeStorage, "failed to create user", err)
	}

	return nil
}

// GetUserByID retrieves a user by id.
func (r *AuthRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, COALESCE(date_of_birth, ''), email, mobile,
			COALESCE(avatar_url, ''), password_hash, COALESCE(role_id::text, ''),
			COALESCE(institute_id::text, ''), is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.Email,
		&user.Mobile,
		&user.AvatarURL,
		&user.PasswordHash,
		&user.RoleID,
		&user.InstituteID,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "user not found")
		}
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to get user", err)
	}

	return &user, nil
}

// ActiveAccountExists reports whether an active account already holds
// the email or mobile.
func (r *AuthRepo) ActiveAccountExists(ctx context.Context, email, mobile string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE (email = $1 OR mobile = $2) AND is_active = true
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email, mobile).Scan(&exists); err != nil {
		return false, apperr.Wrap(apperr.CodeStorage, fmt.Sprintf("failed to check accounts: %v", err), err)
	}

	return exists, nil
}
